// SPDX-License-Identifier: MIT

// Package transform is the interaction engine of eigenplay: a single Model
// owning the 2x2 transformation matrix A, the fixed ring of sample vectors,
// the eigenvector selection, the eigenvalues, the drag locks and the derived
// SVD snapshot.
//
// What & Why:
//
//	A renderer calls Tick once per frame and then reads a Frame. Pointer
//	handlers mutate the model between frames through SelectBasisVector,
//	Lock/Release, SetBasisComponent and DragEigenvector. A is either written
//	column by column (basis-handle drags) or rebuilt from the two selected
//	eigenvectors and their eigenvalues (eigen mode, every Tick).
//
// Error policy:
//
//	A is finite by construction. Selecting two linearly dependent sample
//	vectors is refused with ErrSingularBasis, non-finite input is refused with
//	matrix.ErrNaNInf, and a refused reconstruction leaves A untouched and raises
//	the Unstable flag. Re-selecting or selecting a third vector is a silent
//	no-op.
//
// Concurrency:
//
//	A Model is not safe for concurrent use. It is meant to be driven from the
//	host's single frame goroutine and holds no locks and no goroutines.
package transform

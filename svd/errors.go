// SPDX-License-Identifier: MIT

package svd

import "errors"

var (
	// ErrUnknownBackend is returned by ByName for an unregistered provider name.
	ErrUnknownBackend = errors.New("svd: unknown backend")

	// ErrBackend wraps a failure reported by an external SVD implementation.
	ErrBackend = errors.New("svd: backend failure")
)

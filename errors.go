// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scroll

import "errors"

// Precondition errors
var (
	// ErrFocusIsGap indicates an operation that needs a focused item was
	// invoked while the focus is a gap.
	ErrFocusIsGap = errors.New("focus is a gap")
)

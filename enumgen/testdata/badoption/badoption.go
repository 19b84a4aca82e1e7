// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package badoption

//stringenum:enum transfrom=upper
type Element int

const (
	Grass Element = iota
	Fire
)

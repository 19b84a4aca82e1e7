// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duplicate

//stringenum:labeled
type Element int

const (
	//stringenum:label Grass
	Grass Element = iota

	//stringenum:label grass
	Fire
)

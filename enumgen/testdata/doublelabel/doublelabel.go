// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doublelabel

//stringenum:labeled
type Element int

const (
	//stringenum:label grass
	//stringenum:label turf
	Grass Element = iota

	//stringenum:label fire
	Fire
)

// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package badflag

//stringenum:bitflag
type Flags int32

const (
	Selected Flags = iota
	Focused
)

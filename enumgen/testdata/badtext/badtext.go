// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package badtext

//stringenum:text
type Temp float32

func (t Temp) String() string {
	return ""
}

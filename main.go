// Copyright 2026 The Open-FEM2D-Studio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/OpenAEC-Foundation/Open-FEM2D-Studio-sub004/cmd/fem2d"

func main() {
	fem2d.Execute()
}

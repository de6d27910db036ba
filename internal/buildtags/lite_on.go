// Copyright 2020 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

//go:build shale_lite

package buildtags

// Lite is true if we were built with the "shale_lite" build tag.
//
// Lite builds exclude the optional row cache and WAL filter collaborators
// from the configuration surface.
const Lite = true

// Copyright 2018 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package compression

type noopCompressor struct{}

var _ Compressor = noopCompressor{}

func (noopCompressor) Compress(dst, src []byte) []byte {
	return append(dst[:0], src...)
}

type noopDecompressor struct{}

var _ Decompressor = noopDecompressor{}

func (noopDecompressor) Decompress(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

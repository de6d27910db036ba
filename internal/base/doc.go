// Copyright 2017 The Shale Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package base defines the collaborator contracts shared between the shale
// configuration layer and the storage engine proper: key comparers, merge
// operators, compaction filters, factories for memtables and tables, the
// execution environment, and logging.
//
// Every polymorphic collaborator exposes a self-describing name which the
// configuration layer uses for diagnostics only. The engine relies on these
// names to detect mismatches between the collaborators a database was created
// with and the ones it is reopened with.
package base

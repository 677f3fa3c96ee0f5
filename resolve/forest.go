// Copyright 2024 The PyAST Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"golang.org/x/sync/errgroup"

	"go.pyast.net/syntax"
)

// Forest resolves several module trees concurrently. Each tree is
// confined to its own goroutine; module trees share no nodes, so no
// locking is needed. The first error encountered is returned, and may
// be an ErrorList carrying all errors of one module.
func Forest(modules ...*syntax.Module) error {
	var group errgroup.Group
	for _, m := range modules {
		m := m
		group.Go(func() error {
			return Tree(m)
		})
	}
	return group.Wait()
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package discover

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// passthroughOS is a billy.Filesystem that resolves paths exactly like the os
// package does, relative paths included.
type passthroughOS struct {
	osfs.ChrootOS
}

func (p *passthroughOS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (p *passthroughOS) Root() string {
	return "/"
}

// 🖥️ OSFS returns the native filesystem as a billy.Filesystem
func OSFS() billy.Filesystem {
	return &passthroughOS{}
}

// Copyright (c) 2022 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package filecache provides a LRU file caching mechanism to cache generated
resources on the local disk.

Each key names the path of its file relative to the cache directory. A file
missing from the cache is created by a callback, written under a temporary
name and renamed into place, so readers never observe a partial file.
Concurrent requests for the same key share a single creation. Serve removes
expired files, and the least recently used ones while the cache exceeds its
limits.
*/
package filecache

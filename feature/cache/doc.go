// Package cache builds a name-keyed index of every type known to an
// installed game client.
//
// Names are trimmed and lowercased to form the key. The store is any
// types.TypeSource: the client's own type table or a static data snapshot.
package cache

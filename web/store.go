// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetview"
)

// Entry is the dataset of a session.
type Entry struct {
	Uploaded time.Time
	FileName string
	Dataset  sheetview.Dataset
}

type session struct {
	seen    time.Time
	notice  string
	entry   Entry
	issued  uint64
	settled uint64
	hasData bool
}

// Store keeps the last dataset of each browser session in memory.
//
// Every upload takes a ticket with Begin and settles it with Commit or Reject.
// A ticket older than the last settled one is discarded, so a slow upload
// never overwrites the result of a later one.
type Store struct {
	now       func() time.Time
	sessions  map[string]*session
	nextSweep time.Time
	ttl       time.Duration
	mu        sync.Mutex
}

// NewStore returns a Store forgetting sessions idle for longer than ttl.
// A non-positive ttl keeps them forever. Expired sessions are
// swept out of memory at most once per ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, sessions: make(map[string]*session)}
}

// get returns the session of id, starting a fresh one if it has none or it expired.
// Must be called with mu held.
func (st *Store) get(id string) *session {
	now := st.now()
	if st.ttl > 0 && !now.Before(st.nextSweep) {
		st.sweep(now)
		st.nextSweep = now.Add(st.ttl)
	}
	sess := st.sessions[id]
	if sess == nil || st.expired(sess, now) {
		sess = &session{}
		st.sessions[id] = sess
	}
	sess.seen = now
	return sess
}

func (st *Store) expired(sess *session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(sess.seen) > st.ttl
}

// sweep drops the expired sessions.
func (st *Store) sweep(now time.Time) {
	for id, sess := range st.sessions {
		if st.expired(sess, now) {
			delete(st.sessions, id)
		}
	}
}

// Begin returns a new upload ticket for the session.
func (st *Store) Begin(id string) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.get(id)
	sess.issued++
	return sess.issued
}

// Commit replaces the dataset of the session, unless a later upload has already settled.
func (st *Store) Commit(id string, ticket uint64, e Entry) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.get(id)
	if ticket <= sess.settled {
		return false
	}
	sess.settled = ticket
	sess.entry, sess.hasData = e, true
	sess.notice = ""
	return true
}

// Reject records a failed upload: the notice is shown once, the dataset stays.
func (st *Store) Reject(id string, ticket uint64, notice string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.get(id)
	if ticket <= sess.settled {
		return false
	}
	sess.settled = ticket
	sess.notice = notice
	return true
}

// Get returns the current dataset of the session.
func (st *Store) Get(id string) (Entry, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.get(id)
	return sess.entry, sess.hasData
}

// TakeNotice returns the pending notice of the session and clears it.
func (st *Store) TakeNotice(id string) string {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess := st.get(id)
	msg := sess.notice
	sess.notice = ""
	return msg
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweep(st.now())
	return len(st.sessions)
}

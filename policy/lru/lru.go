// Package lru implements the LRU eviction policy.
package lru

import "cachefind/policy"

// node is an intrusive doubly linked list element (head=MRU, tail=LRU).
type node struct {
	key  string
	prev *node
	next *node
}

// lru is a classic "move-to-front" Least-Recently-Used policy.
// A map index locates any key's node in O(1), so every operation is
// worst-case constant time; there are no list scans.
type lru struct {
	idx  map[string]*node
	head *node // MRU
	tail *node // LRU
}

// New returns an empty LRU policy.
func New() policy.Policy {
	return &lru{idx: make(map[string]*node)}
}

// OnAccess promotes a tracked key to MRU, or inserts an unknown key at MRU.
func (p *lru) OnAccess(key string) {
	if n, ok := p.idx[key]; ok {
		p.moveToFront(n)
		return
	}
	n := &node{key: key}
	p.idx[key] = n
	p.insertFront(n)
}

// Evict detaches and returns the current LRU key.
func (p *lru) Evict() (string, bool) {
	n := p.tail
	if n == nil {
		return "", false
	}
	p.unlink(n)
	delete(p.idx, n.key)
	return n.key, true
}

// Remove forgets key without electing it as a victim.
func (p *lru) Remove(key string) {
	n, ok := p.idx[key]
	if !ok {
		return
	}
	p.unlink(n)
	delete(p.idx, key)
}

// Len reports the number of tracked keys.
func (p *lru) Len() int { return len(p.idx) }

// insertFront inserts n at MRU in O(1).
func (p *lru) insertFront(n *node) {
	n.prev = nil
	n.next = p.head
	if p.head != nil {
		p.head.prev = n
	}
	p.head = n
	if p.tail == nil {
		p.tail = n
	}
}

// moveToFront promotes n to MRU in O(1).
func (p *lru) moveToFront(n *node) {
	if n == p.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if p.tail == n {
		p.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = p.head
	if p.head != nil {
		p.head.prev = n
	}
	p.head = n
	if p.tail == nil {
		p.tail = n
	}
}

// unlink removes n from the list in O(1).
func (p *lru) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if p.head == n {
		p.head = n.next
	}
	if p.tail == n {
		p.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// Package source defines the edge sources a CSR container is built from and
// provides an in-memory implementation plus a plain-text edge-list reader.
//
// A Source enumerates edges per node through absolute edge indices:
// node n owns edges [EdgeBegin(n), EdgeEnd(n)), and EdgeEnd(n) equals
// EdgeBegin(n+1). Random access by index lets every construction worker
// stream its own node range without coordinating with the others.
//
// Text format read by ReadEdgeList:
//
//	# comment (also '%')
//	src dst [weight]
//
// Node ids are non-negative integers below 2^32. The node count is the
// largest id seen plus one unless WithNodeCount fixes it. Missing weights
// default to 1.
package source

package tokencheck

// Package tokencheck implements a conformance harness for HTML tokenizers.
//
// It reduces the raw event stream emitted by a tokenizer into a canonical
// list of tokens, and parses html5lib-style conformance fixtures into the
// same canonical form, so the two can be compared for structural equality.
//
// The package is organized into several sub-packages:
//
// - token: the canonical token model all comparisons happen over
// - fixture: parsing of positional-array conformance fixtures and suites
// - htmlstream: an event source backed by the golang.org/x/net/html tokenizer
//
// The root package contains the tokenizer event model, the TokenList
// accumulator that performs the stream-to-canonical reduction, and the
// comparison helpers:
//
//	tokenize input -> TokenList -> canonical tokens -+
//	                                                 +-> compare
//	parse fixture ---------------> canonical tokens -+
//
// The reduction is incremental and push-driven: the tokenizer calls
// TokenList.Push once per event, in emission order, and the list takes care
// of reassembling text nodes that were delivered as multiple fragments,
// decoding each piece of raw input exactly once.
//
// The CLI utility is in the directory cmd/tokencheck. You can install it with:
//
//	go install github.com/arnodel/tokencheck/cmd/tokencheck

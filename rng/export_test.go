package rng

// Test bridge: exposes the materializer to package rng_test.
var Complete = complete

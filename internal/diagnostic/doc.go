// Package diagnostic collects the errors and warnings found while registering
// configuration schemas and checking sources against them.
//
// Registration reports schema defects such as unsupported field types and
// duplicate segments. Checking a source reports unrecognized keys, with
// "did you mean" suggestions, and values or defaults that do not convert.
package diagnostic

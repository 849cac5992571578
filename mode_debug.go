//go:build easyspot_debug

package easyspot

// Debug reports whether this build tracks live blocks and validates every
// reference access and drop against them.
const Debug = true

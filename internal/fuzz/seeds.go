package fuzztests

import (
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
)

// languageSeeds covers every construct the parser knows plus the error
// shapes that once needed special handling.
var languageSeeds = []string{
	"",
	"fn main() -> i32 { return 0; }\n",
	"public static inline fn f<T: A + B = i32>(a: T, b: Vec<T>) -> T { return a; }",
	"external \"C\" fn puts(s: String) -> i32;",
	"external \"Rust\" fn nope();",
	"final abstract class Stack<T> { items: Vec<T>; public fn push(v: T) { } }",
	"struct P { x: f64, y: f64 } enum E { A, B, } interface I<T> { fn f() -> T; }",
	"namespace a { namespace b { const X: i32 = 1 + 2 * 3; } } import std::io;",
	"fn f() { let x = new Vec<i32>(1, 2); x[0] = -x[1] as i64; delete x; }",
	"fn f() { if a { } else if b { } else { } while c { break; } do { continue; } while d; }",
	"fn f() { for let i = 0; i < 10; i = i + 1 { g::<T>(i); } }",
	"fn f() { s = \"a\\tb\\\"c\"; n = 0x_ff + 0b1 + 0o7 + 1_000 + 1.5e3; }",
	"public public private",
	"fn f(a: i32, a: i32) {}",
	"fn f() { let x: int = 1\nlet y: int = 2; }",
	"/* unterminated /* nested */",
	"fn f() { ((((((((((((1)))))))))))) }",
	"f::<i32>::<i64>",
}

func addSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// Package testutil provides test fixtures and utilities.
//
// # TestEnv
//
// TestEnv builds a fully wired test environment: a temp managed root, a
// mock toolchain, and an app context installed as the process default.
//
//	func TestSomething(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    defer env.Cleanup()
//
//	    env.AddSandbox("web", pkgdb.Package{ID: "lens-4.13-aaaa"})
//	    // ... exercise code against env.App / app.Default ...
//	}
//
// # Scaffolding
//
// AddSandbox and AddProject create directories shaped the way the real
// toolchain leaves them: a cabal.sandbox.config naming a package
// database dir, and one conf file per package inside it. The mock
// toolchain is taught about each scaffolded database, so enumeration
// through the Tool interface matches what is on disk.
//
// AddBareSandbox creates only the sandbox directory, for exercising
// missing-config paths.
package testutil

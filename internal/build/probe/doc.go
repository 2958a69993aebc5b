// Package probe checks for pkg-config and for packages it knows about.
//
// Each check prints a progress message before running pkg-config and a
// yes/no result after it. The pkg-config exit status is the answer; a
// missing pkg-config binary is reported as "no".
package probe

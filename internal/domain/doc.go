// Package domain contains the core alignment-analysis model for alnscope.
//
// The domain is I/O-agnostic: it does not depend on FASTA parsing, os/exec,
// or the filesystem. Infra/adapters map into/from these types.
package domain

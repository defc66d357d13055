// Package config manages configuration parsing and validation for symstrip.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+-----+ +----+----+ +-----+-----+
//	|   YAML    | |   HCL   | |   JSON    |
//	|  Parser   | | Parser  | |  Parser   |
//	+-----------+ +---------+ +-----------+
//
// 🎯 Purpose:
// - Loads .symstrip.hcl, .symstrip.yaml or .symstrip.json
// - Validates symbol and exclude globs before any file is touched
// - Turns the file into symbols.Options and a worker count
//
// 🔄 Flow:
// 1. Resolve picks the named file or the first default file in the directory
// 2. GetParser selects a parser by extension
// 3. Validate fills in defaults
// 4. The command layer overrides fields with explicitly set flags
//
// 🔍 Example:
//
//	# .symstrip.hcl
//	patterns    = ["org.junit.**", "${env.EXTRA_PKG}.**"]
//	annotations = true
//	jobs        = 4
//	exclude     = ["**/generated/**"]
//
//	cfg, err := config.Resolve(ctx, ".", "")
//	if err != nil {
//		return err
//	}
//	runner := batch.NewRunner[symbols.Options](remover, cfg.Workers())
package config

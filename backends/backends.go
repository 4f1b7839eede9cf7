// Package backends pulls in every built-in executor for its registration
// side effects. Binaries blank-import it once:
//
//	import _ "github.com/23skdu/longbow-sinew/backends"
//
// The reference executor is always present. The netlib executor joins
// when cgo is on, and the cuBLAS executor when built with the cuda tag
// on linux.
package backends

import (
	_ "github.com/23skdu/longbow-sinew/internal/backend/cblas"
	_ "github.com/23skdu/longbow-sinew/internal/backend/cublas"
	_ "github.com/23skdu/longbow-sinew/internal/backend/ref"
)

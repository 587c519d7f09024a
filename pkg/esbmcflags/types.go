package esbmcflags

import (
	"github.com/esbmc/vscode-esbmc/internal/config"
	"github.com/esbmc/vscode-esbmc/internal/engine"
)

// Type aliases re-export engine and config types as the public API.

type Settings = config.Settings
type LayerInfo = config.LayerInfo
type Finding = engine.Finding
type CheckResult = engine.CheckResult
type InfoResult = engine.InfoResult

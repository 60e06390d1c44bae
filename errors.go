// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *ConfigError through errors.Is.
var ErrConfig = errors.New("plllots: invalid chart configuration")

// Components named by a ConfigError.
const (
	ComponentMargins  = "margins"
	ComponentXAxis    = "x axis"
	ComponentYAxis    = "y axis"
	ComponentAxisPair = "axis pair"
	ComponentSeries   = "series"
	ComponentTheme    = "theme"
)

// ConfigError reports a chart description that cannot be rendered. Index is
// the position of the failing axis or series in its list, or -1 when the
// component is not indexed.
type ConfigError struct {
	Component string
	Index     int
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("plllots: %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("plllots: %s %d: %s", e.Component, e.Index, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func configErrorf(component string, index int, format string, args ...any) error {
	return &ConfigError{
		Component: component,
		Index:     index,
		Reason:    fmt.Sprintf(format, args...),
	}
}

func axisComponent(dim Dimension) string {
	if dim == DimX {
		return ComponentXAxis
	}
	return ComponentYAxis
}

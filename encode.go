// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plllots

import (
	"encoding/json"
	"fmt"
)

type taggedPrimitive struct {
	Kind      PrimitiveKind `json:"kind"`
	Primitive Primitive     `json:"primitive"`
}

// MarshalPrimitives encodes prims as a JSON array of
// {"kind": ..., "primitive": ...} objects, in draw order.
func MarshalPrimitives(prims []Primitive, pretty bool) ([]byte, error) {
	tagged := make([]taggedPrimitive, len(prims))
	for i, p := range prims {
		tagged[i] = taggedPrimitive{Kind: p.Kind(), Primitive: p}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(tagged, "", "  ")
	} else {
		data, err = json.Marshal(tagged)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode primitives: %w", err)
	}

	return data, nil
}

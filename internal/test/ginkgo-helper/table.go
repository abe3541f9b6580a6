// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ginkgohelper

import (
	"fmt"
	"reflect"

	"github.com/onsi/ginkgo/v2"
)

type ContextTableEntryT struct {
	fmtArgs []any
	args    []reflect.Value
}

// ContextTable generates one ginkgo.Context per entry.
// The body function and the entries can be given in any order,
// the body is called inside the context with the entry arguments.
// Untyped nil arguments are replaced by zero values of the parameter type.
func ContextTable(message string, args ...any) {
	var (
		body    reflect.Value
		entries []*ContextTableEntryT
	)

	for i := range args {
		switch arg := args[i].(type) {
		case *ContextTableEntryT:
			entries = append(entries, arg)
		default:
			v := reflect.ValueOf(arg)
			if v.Kind() != reflect.Func {
				panic(fmt.Sprintf("ContextTable: unexpected argument %#v", arg))
			}
			body = v
		}
	}

	if !body.IsValid() {
		panic("ContextTable: body function is missing")
	}

	for i := range entries {
		entry := entries[i]
		ginkgo.Context(fmt.Sprintf(message, entry.fmtArgs...), func() {
			callArgs := make([]reflect.Value, len(entry.args))
			for j := range entry.args {
				if entry.args[j].IsValid() {
					callArgs[j] = entry.args[j]
					continue
				}

				callArgs[j] = reflect.New(body.Type().In(j)).Elem()
			}
			body.Call(callArgs)
		})
	}
}

func (c *ContextTableEntryT) WithFmt(args ...any) *ContextTableEntryT {
	c.fmtArgs = args
	return c
}

func ContextTableEntry(args ...any) *ContextTableEntryT {
	ret := &ContextTableEntryT{}
	for i := range args {
		ret.args = append(ret.args, reflect.ValueOf(args[i]))
	}
	ret.fmtArgs = args
	return ret
}

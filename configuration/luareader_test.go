// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type entry struct {
	Op  string `gluamapper:"op"`
	Key string `gluamapper:"key"`
}

type testConfiguration struct {
	Name       string  `gluamapper:"name"`
	Count      int     `gluamapper:"count"`
	Enabled    bool    `gluamapper:"enabled"`
	ConfigName string  `gluamapper:"config_name"`
	Operations []entry `gluamapper:"operations"`
}

const testScript = `
local count = 0
for i = 1, 4 do
    count = count + i
end
return {
    name = prefix .. "-tree",
    count = count,
    enabled = true,
    config_name = arg[0],
    operations = {
        { op = "insert", key = "k1" },
        { op = "remove", key = "k2" },
    },
}
`

func writeScript(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write script error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeScript(t, testScript)

	config := testConfiguration{Name: "default", Count: -1}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"prefix": "avl"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "avl-tree", config.Name, "wrong name")
	assert.Equal(t, 10, config.Count, "wrong count")
	assert.True(t, config.Enabled, "wrong enabled")
	assert.Equal(t, fileName, config.ConfigName, "wrong arg[0]")
	assert.Equal(t, []entry{{"insert", "k1"}, {"remove", "k2"}}, config.Operations, "wrong operations")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName := writeScript(t, `return { count = 3 }`)

	config := testConfiguration{Name: "default"}
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "default", config.Name, "default overwritten")
	assert.Equal(t, 3, config.Count, "wrong count")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName := writeScript(t, `return { count = 3 }`)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "value accepted")

	var nilConfig *testConfiguration
	err = configuration.ParseConfigurationFile(fileName, nilConfig, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer accepted")

	count := 0
	err = configuration.ParseConfigurationFile(fileName, &count, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-struct accepted")

	err = configuration.ParseConfigurationFile(writeScript(t, `return 42`), &config, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non-table accepted")

	err = configuration.ParseConfigurationFile(writeScript(t, `return {`), &config, nil)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &config, nil)
	assert.NotNil(t, err, "missing file accepted")
}

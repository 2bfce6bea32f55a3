package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type output struct {
	Output  string                 `yaml:"output"`
	Consume bool                   `yaml:"consume"`
	Rest    map[string]interface{} `yaml:",inline"`
}

func TestKeys(t *testing.T) {

	keys := Keys()
	for _, k := range []string{"lr", "knn", "dt", "mcc", "mlp", "gmm", "gd", "sgd", "nbc", "lda"} {
		assert.Contains(t, keys, k)
	}

}

func TestLoad(t *testing.T) {

	type test struct {
		key     string
		content string
		output  string
		consume bool
		err     bool
	}

	tests := map[string]test{
		"embedded": {
			key:    "lr",
			output: "plot",
		},
		"override": {
			key:     "lr",
			content: "output: fitted\nconsume: true\n",
			output:  "fitted",
			consume: true,
		},
		"override-other-key": {
			key:     "dt",
			content: "output: fitted\n",
			output:  "plot.{id}",
			consume: true,
		},
		"unknown-key": {
			key: "none",
			err: true,
		},
		"invalid-value": {
			key:     "lr",
			content: "consume: maybe\n",
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "lr.yaml"), []byte(tt.content), 0644))
			}
			var o output
			err := Load(dir, tt.key, &o)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.output, o.Output)
			assert.Equal(t, tt.consume, o.Consume)
		})
	}

}

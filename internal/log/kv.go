package log

import "sort"

// KV holds the key-value pairs attached to a single log line.
type KV map[string]any

// kvToArgs flattens the first KV map into the alternating key/value
// slice slog expects. Keys are sorted so log lines stay deterministic.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, kv[key])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace prepended as the first
// key-value pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	args := []any{"ns", namespace}
	return append(args, kvToArgs(keyVals...)...)
}

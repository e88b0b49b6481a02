// Package utils provides JSON helpers for tool inputs and descriptions.
package utils

import (
	"bytes"
	"encoding/json"
	"strings"
)

var fence = []byte("```")

// CleanJSON extracts the JSON document from a tool input,
// which may be wrapped in a ```json fence or surrounded by prose,
// for example `Here you go: {"iterationPublicId": 1}`.
// Input without braces or brackets is returned as is.
func CleanJSON(bs []byte) []byte {
	bs = trimFence(bs)

	start := firstIndexOf(bs, '{', '[')
	if start == -1 {
		return bs
	}
	bs = bs[start:]

	end := lastIndexOf(bs, '}', ']')
	if end == -1 {
		return bs
	}
	return bs[:end+1]
}

// trimFence returns the content of the first fenced block
func trimFence(bs []byte) []byte {
	start := bytes.Index(bs, fence)
	if start == -1 {
		return bs
	}
	start += len(fence)

	// skip the language tag
	for i := start; i < len(bs) && bs[i] != '{' && bs[i] != '['; i++ {
		if bs[i] == '\n' {
			start = i + 1
			break
		}
	}

	content := bs[start:]
	if end := bytes.LastIndex(content, fence); end != -1 {
		content = content[:end]
	}
	return bytes.TrimSpace(content)
}

func firstIndexOf(bs []byte, a, b byte) int {
	ia, ib := bytes.IndexByte(bs, a), bytes.IndexByte(bs, b)
	switch {
	case ia == -1:
		return ib
	case ib == -1:
		return ia
	default:
		return min(ia, ib)
	}
}

func lastIndexOf(bs []byte, a, b byte) int {
	return max(bytes.LastIndexByte(bs, a), bytes.LastIndexByte(bs, b))
}

func ToJSON(val any) string {
	js, _ := json.Marshal(val)
	return string(js)
}

func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "\t")
	return string(js)
}

func BackticksJSON(js string) string {
	return "\n```json\n" + strings.TrimSpace(js) + "\n```\n"
}

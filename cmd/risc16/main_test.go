package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const helloScc = `main =
    72 emit
    halt
emit ASM =
    PNT e b
    SET a 1
    SUB e a
    CPY out e
    SET c OUTPUT_DATA
    SAV b c
    SET c OUTPUT_FLAG
    SET d 1
    SAV d c
halt ASM =
    HLT
`

func TestRunPipeline(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "hello.scc")
	text := filepath.Join(dir, "hello.asm")
	bin := filepath.Join(dir, "hello.bin")

	assert.NoError(os.WriteFile(src, []byte(helloScc), 0o644))

	var out bytes.Buffer
	assert.Equal(EXIT_OK, run([]string{"scc", src, text}, &out))
	assert.Equal(EXIT_OK, run([]string{"compile", text, bin}, &out))

	assert.Equal(EXIT_OK, run([]string{"run", bin}, &out))
	assert.Equal("H", out.String())

	out.Reset()
	assert.Equal(EXIT_OK, run([]string{"run", "--worker", bin}, &out))
	assert.Equal("H", out.String())

	out.Reset()
	assert.Equal(EXIT_OK, run([]string{"disasm", bin}, &out))
	assert.Contains(out.String(), "SET e 8000\nSET f 16000\n")
}

func TestRunExitStatus(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.asm")
	fault := filepath.Join(dir, "fault.bin")
	missing := filepath.Join(dir, "missing")

	assert.NoError(os.WriteFile(bad, []byte("SET a 1\nFOO a b\n"), 0o644))
	assert.NoError(os.WriteFile(fault, []byte{0x00, 0x63}, 0o644))

	var out bytes.Buffer
	assert.Equal(EXIT_USAGE, run(nil, &out))
	assert.Equal(EXIT_USAGE, run([]string{"frob"}, &out))
	assert.Equal(EXIT_USAGE, run([]string{"compile", bad}, &out))
	assert.Equal(EXIT_USAGE, run([]string{"compile", "--worker", bad, missing}, &out))
	assert.Equal(EXIT_USAGE, run([]string{"run", bad, missing}, &out))
	assert.Equal(EXIT_COMPILE, run([]string{"compile", bad, filepath.Join(dir, "bad.bin")}, &out))
	assert.Equal(EXIT_COMPILE, run([]string{"scc", bad, filepath.Join(dir, "bad.out")}, &out))
	assert.Equal(EXIT_IO, run([]string{"run", missing}, &out))
	assert.Equal(EXIT_FAULT, run([]string{"run", fault}, &out))
}

package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyisa/io"
)

func FuzzAssembler(f *testing.F) {
	f.Add("LDIM 72\nMOV R0 IM\nMOV IO R0\n", "")
	f.Add("$A 'a'\n(L)\nMOV R0 IO\nLDIM L\nJEQ IM R0 R1 // loop\n", "xyz")
	f.Add("(X)\n$Y X\nLOAD R0 R1 Y\nSET R0 R1 63\nJAR RA\n", "")
	f.Add("() $ ( ) // '''\n", "")

	f.Fuzz(func(t *testing.T, source string, input string) {
		assert := assert.New(t)

		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(source))
		if err != nil {
			var se *ErrSyntax
			assert.True(errors.As(err, &se), err.Error())
			return
		}

		for _, op := range prog.Opcodes {
			assert.Equal(op.Operation.Shape(), op.Shape)
			assert.NotEqual(KIND_INVALID, op.Reg1.Kind())
			assert.NotEqual(KIND_INVALID, op.Reg2.Kind())
			assert.NotEqual(KIND_INVALID, op.Reg3.Kind())
		}

		tape := &io.Tape{Output: &bytes.Buffer{}}
		tape.Load(input)
		cpu := NewCpu(tape)
		cpu.Code = prog.Instructions()
		for range 1000 {
			err = cpu.Tick()
			if err != nil {
				break
			}
		}
	})
}

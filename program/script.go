package program

import (
	"io"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ekarademir/vm16/cpu"
	"github.com/ekarademir/vm16/memory"
)

// LoadScript evaluates a Starlark program-building script against a fresh
// Builder and returns the finished memory image. The script sees one builtin
// per instruction mnemonic plus org/byte/word for raw data, and the machine's
// register and opcode constants as predeclared names.
func LoadScript(src io.Reader, name string, size int) (image []byte, err error) {
	bld := NewBuilder(size)

	// A script that encodes past the image end trips the memory bounds
	// fault; surface it as a script error rather than aborting the host.
	defer func() {
		if fault := recover(); fault != nil {
			oob, ok := fault.(memory.ErrOutOfBounds)
			if !ok {
				panic(fault)
			}
			image = nil
			err = ErrScript{Name: name, Err: oob}
		}
	}()

	predeclared := starlark.StringDict{
		"MEMORY_SIZE": starlark.MakeInt(size),
	}
	for key, value := range cpu.Defines() {
		number, perr := strconv.ParseUint(value, 0, 16)
		if perr != nil {
			continue
		}
		predeclared[key] = starlark.MakeInt(int(number))
	}

	for _, builtin := range bld.builtins() {
		predeclared[builtin.Name()] = builtin
	}

	thread := &starlark.Thread{Name: name}
	opts := &syntax.FileOptions{
		TopLevelControl: true, // scripts may unroll loops into code
	}
	_, err = starlark.ExecFileOptions(opts, thread, name, src, predeclared)
	if err != nil {
		err = ErrScript{Name: name, Err: err}
		return
	}

	image = bld.Image()
	return
}

// builtins returns the script surface of the builder, one builtin per
// instruction mnemonic.
func (bld *Builder) builtins() []*starlark.Builtin {
	return []*starlark.Builtin{
		wordArg("org", func(address uint16) { bld.Org(address) }),
		depositArgs("byte", func(value int) (err error) {
			data, err := byteOf(value)
			if err != nil {
				return
			}
			bld.Byte(data)
			return
		}),
		depositArgs("word", func(value int) (err error) {
			data, err := wordOf(value)
			if err != nil {
				return
			}
			bld.Word(data)
			return
		}),
		wordRegArgs("movlr", bld.MovLitReg),
		regRegArgs("movrr", bld.MovRegReg),
		regWordArgs("movrm", bld.MovRegMem),
		wordRegArgs("movmr", bld.MovMemReg),
		regRegArgs("add", bld.AddRegReg),
		wordWordArgs("jne", bld.JmpNotEq),
		wordArg("pshl", bld.PshLit),
		regArg("pshr", bld.PshReg),
		regArg("pop", bld.Pop),
		wordArg("call", bld.CalLit),
		regArg("calr", bld.CalReg),
		noArgs("ret", bld.Ret),
		noArgs("noop", bld.Noop),
	}
}

// registerOf validates a script-supplied register index.
func registerOf(value int) (reg cpu.Register, err error) {
	if value < 0 || value >= cpu.REGISTER_COUNT {
		err = ErrBadRegister(value)
		return
	}

	reg = cpu.Register(value)
	return
}

// wordOf validates a script-supplied literal or address.
func wordOf(value int) (word uint16, err error) {
	if value < 0 || value > 0xffff {
		err = ErrBadWord(value)
		return
	}

	word = uint16(value)
	return
}

// byteOf validates a script-supplied data byte.
func byteOf(value int) (data byte, err error) {
	if value < 0 || value > 0xff {
		err = ErrBadByte(value)
		return
	}

	data = byte(value)
	return
}

func noArgs(name string, emit func()) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		emit()
		return starlark.None, nil
	})
}

func wordArg(name string, emit func(uint16)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		word, err := wordOf(value)
		if err != nil {
			return nil, err
		}
		emit(word)
		return starlark.None, nil
	})
}

func regArg(name string, emit func(cpu.Register)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var index int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &index); err != nil {
			return nil, err
		}
		reg, err := registerOf(index)
		if err != nil {
			return nil, err
		}
		emit(reg)
		return starlark.None, nil
	})
}

func wordRegArgs(name string, emit func(uint16, cpu.Register)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value int
		var index int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &value, &index); err != nil {
			return nil, err
		}
		word, err := wordOf(value)
		if err != nil {
			return nil, err
		}
		reg, err := registerOf(index)
		if err != nil {
			return nil, err
		}
		emit(word, reg)
		return starlark.None, nil
	})
}

func regWordArgs(name string, emit func(cpu.Register, uint16)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var index int
		var value int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &index, &value); err != nil {
			return nil, err
		}
		reg, err := registerOf(index)
		if err != nil {
			return nil, err
		}
		word, err := wordOf(value)
		if err != nil {
			return nil, err
		}
		emit(reg, word)
		return starlark.None, nil
	})
}

func regRegArgs(name string, emit func(cpu.Register, cpu.Register)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var index1 int
		var index2 int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &index1, &index2); err != nil {
			return nil, err
		}
		reg1, err := registerOf(index1)
		if err != nil {
			return nil, err
		}
		reg2, err := registerOf(index2)
		if err != nil {
			return nil, err
		}
		emit(reg1, reg2)
		return starlark.None, nil
	})
}

func wordWordArgs(name string, emit func(uint16, uint16)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value1 int
		var value2 int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &value1, &value2); err != nil {
			return nil, err
		}
		word1, err := wordOf(value1)
		if err != nil {
			return nil, err
		}
		word2, err := wordOf(value2)
		if err != nil {
			return nil, err
		}
		emit(word1, word2)
		return starlark.None, nil
	})
}

func depositArgs(name string, emit func(int) error) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) != 0 {
			return nil, ErrKeywordArgs(fn.Name())
		}
		for _, arg := range args {
			value, err := starlark.AsInt32(arg)
			if err != nil {
				return nil, err
			}
			if err := emit(value); err != nil {
				return nil, err
			}
		}
		return starlark.None, nil
	})
}

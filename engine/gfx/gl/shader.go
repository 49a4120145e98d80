package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/reactive"
)

// Shader is a GL program compiled when the context becomes ready.
type Shader struct {
	name             string
	vertSrc, fragSrc string
	program          uint32
	err              error
	warned           bool
	sub              *reactive.Subscription[core.ContextReady]
}

// NewShader keeps the sources (null-terminated) until ready fires.
func NewShader(name, vertSrc, fragSrc string, ready *reactive.Observable[core.ContextReady]) *Shader {
	s := &Shader{name: name, vertSrc: vertSrc, fragSrc: fragSrc}
	s.sub = ready.Subscribe(reactive.Reactor[core.ContextReady]{OnNext: s.compile})
	return s
}

func (s *Shader) compile(core.ContextReady) {
	if s.program != 0 {
		return
	}
	prog, err := makeProgram(s.vertSrc, s.fragSrc)
	if err != nil {
		s.err = fmt.Errorf("shader %q: %w", s.name, err)
		core.Logger().Error("shader build failed", "shader", s.name, "err", err)
		return
	}
	s.program = prog
	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uTex\x00")), 0)
	gl.UseProgram(0)
	core.Logger().Debug("shader compiled", "shader", s.name, "program", prog)
}

// Err reports a compile or link failure.
func (s *Shader) Err() error { return s.err }

func (s *Shader) Use() {
	if s.program == 0 {
		if !s.warned {
			core.Logger().Warn("shader used before the context is ready", "shader", s.name)
			s.warned = true
		}
		return
	}
	gl.UseProgram(s.program)
}

func (s *Shader) Dispose() {
	s.sub.Unsubscribe()
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

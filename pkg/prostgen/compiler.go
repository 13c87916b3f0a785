package prostgen

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/kbirk/prostgen/internal/gen/rust_gen"
	"github.com/kbirk/prostgen/internal/parse"
)

// Output is the generated code of one package, merged across every input file
// that declares it.
type Output struct {
	Package string
	Files   []string
	Code    []byte
}

type Compiler struct {
	ReadFile func(path string) ([]byte, error)
	Writer   OutputWriter
	Logger   zerolog.Logger
}

func NewCompiler(outputDir string) *Compiler {
	return &Compiler{
		ReadFile: os.ReadFile,
		Writer:   NewDirWriter(outputDir),
		Logger:   zerolog.Nop(),
	}
}

func (c *Compiler) generateFile(path string) (*parse.PackageDeclaration, []byte, error) {

	content, err := c.ReadFile(path)
	if err != nil {
		return nil, nil, &IOError{Op: "read", Path: path, Err: err}
	}

	pkg, perr := parse.ParseFile(path, string(content))
	if perr != nil {
		return nil, nil, perr
	}

	code, err := rust_gen.GeneratePackageRustCode(pkg)
	if err != nil {
		var generr *parse.ParsingError
		if errors.As(err, &generr) {
			generr.Filename = path
			generr.Content = string(content)
		}
		return nil, nil, err
	}

	return pkg, []byte(code), nil
}

// Generate parses and translates each schema in order. Files declaring the
// same package have their code concatenated in input order. Outputs are
// returned in the order their package was first seen.
func (c *Compiler) Generate(protos []string) ([]Output, error) {

	var outputs []Output
	indexByPackage := map[string]int{}

	for _, path := range protos {
		pkg, code, err := c.generateFile(path)
		if err != nil {
			return nil, err
		}

		c.Logger.Debug().
			Str("file", path).
			Str("package", pkg.Name).
			Str("syntax", pkg.Syntax).
			Strs("imports", pkg.Imports).
			Int("bytes", len(code)).
			Msg("generated file")

		i, ok := indexByPackage[pkg.Name]
		if !ok {
			indexByPackage[pkg.Name] = len(outputs)
			outputs = append(outputs, Output{
				Package: pkg.Name,
				Files:   []string{path},
				Code:    code,
			})
			continue
		}
		outputs[i].Files = append(outputs[i].Files, path)
		outputs[i].Code = append(outputs[i].Code, code...)
	}

	return outputs, nil
}

// Compile generates every schema and hands the merged outputs to the writer.
// Include directories are accepted for future import resolution but unused.
func (c *Compiler) Compile(protos []string, includes []string) error {

	if len(includes) > 0 {
		c.Logger.Debug().Strs("includes", includes).Msg("include directories are not resolved")
	}

	outputs, err := c.Generate(protos)
	if err != nil {
		return err
	}

	return c.Write(outputs)
}

// Write hands each output to the writer in order. A failure stops the batch;
// outputs already written are left in place.
func (c *Compiler) Write(outputs []Output) error {
	for _, output := range outputs {
		err := c.Writer.WriteOutput(output.Package, output.Code)
		if err != nil {
			var ioerr *IOError
			if !errors.As(err, &ioerr) {
				err = &IOError{Op: "write", Path: output.Package, Err: err}
			}
			return err
		}
		c.Logger.Info().
			Str("package", output.Package).
			Int("files", len(output.Files)).
			Int("bytes", len(output.Code)).
			Msg("wrote package")
	}
	return nil
}

// CompileProtos compiles the schemas into <outputDir>/<package>.rs files.
func CompileProtos(protos []string, includes []string, outputDir string) error {
	return NewCompiler(outputDir).Compile(protos, includes)
}

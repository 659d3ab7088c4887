package extract

import (
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSFamilyClassWithMethodAndInheritance(t *testing.T) {
	src := `import { Base } from './base';

export class Widget extends Base implements Renderable {
  constructor(name) {
    this.name = name;
  }

  render() {
    return this.name;
  }
}
`
	file, ok := Extract("/abs/widget.js", "widget.js", []byte(src), types.LangJavaScript)
	require.True(t, ok)
	require.Equal(t, []string{"./base"}, file.Imports)

	var class, render *types.IndexedSymbol
	for i := range file.Symbols {
		switch file.Symbols[i].Name {
		case "Widget":
			class = &file.Symbols[i]
		case "render":
			render = &file.Symbols[i]
		}
	}
	require.NotNil(t, class)
	assert.Equal(t, types.KindClass, class.Kind)
	assert.Equal(t, []string{"Base", "Renderable"}, class.Inherits)
	assert.Contains(t, class.Inherits, "Base")

	require.NotNil(t, render)
	assert.Equal(t, types.KindMethod, render.Kind)
	assert.Equal(t, "Widget", render.ContainerName)
	assert.Equal(t, "Widget.render", render.QualifiedName)
}

func TestExtractJSFamilyFunctionDeclarationIsTestByNamingConvention(t *testing.T) {
	src := `function testAddsTwoNumbers() {
  return 1 + 1;
}
`
	file, ok := Extract("/abs/math.test.js", "math.test.js", []byte(src), types.LangJavaScript)
	require.True(t, ok)
	require.Len(t, file.Symbols, 1)
	assert.Equal(t, types.KindTest, file.Symbols[0].Kind)
	assert.Equal(t, "testAddsTwoNumbers", file.Symbols[0].Name)
}

func TestExtractJSFamilyArrowConstAndTopLevelVar(t *testing.T) {
	src := `const add = (a, b) => {
  return a + b;
};

const PI = 3.14159;
let counter = 0;
`
	file, ok := Extract("/abs/util.js", "util.js", []byte(src), types.LangJavaScript)
	require.True(t, ok)

	byName := map[string]types.IndexedSymbol{}
	for _, s := range file.Symbols {
		byName[s.Name] = s
	}

	require.Contains(t, byName, "add")
	assert.Equal(t, types.KindFunction, byName["add"].Kind)

	require.Contains(t, byName, "PI")
	assert.Equal(t, types.KindConstant, byName["PI"].Kind)

	require.Contains(t, byName, "counter")
	assert.Equal(t, types.KindVariable, byName["counter"].Kind)
}

func TestExtractJSFamilyTypeScriptInterfaceAndEnum(t *testing.T) {
	src := `export interface Config {
  name: string;
}

export enum Status {
  Active,
  Inactive,
}

export type ID = string | number;
`
	file, ok := Extract("/abs/config.ts", "config.ts", []byte(src), types.LangTypeScript)
	require.True(t, ok)

	var kinds = map[string]types.SymbolKind{}
	for _, s := range file.Symbols {
		kinds[s.Name] = s.Kind
	}
	assert.Equal(t, types.KindInterface, kinds["Config"])
	assert.Equal(t, types.KindEnum, kinds["Status"])
	assert.Equal(t, types.KindTypeAlias, kinds["ID"])
}

func TestExtractJSFamilyBareImportIsRecorded(t *testing.T) {
	src := "import './polyfills';\n"
	file, ok := Extract("/abs/entry.js", "entry.js", []byte(src), types.LangJavaScript)
	require.True(t, ok)
	assert.Equal(t, []string{"./polyfills"}, file.Imports)
}

package extract

import (
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJavaClassWithExtendsAndImplements(t *testing.T) {
	src := `package com.example.app;

import java.util.List;

public class UserService extends BaseService implements Disposable {
    public void dispose() {
        System.out.println("disposed");
    }

    private int count() {
        return 0;
    }
}
`
	file, ok := Extract("/abs/UserService.java", "UserService.java", []byte(src), types.LangJava)
	require.True(t, ok)
	require.Equal(t, []string{"java.util.List"}, file.Imports)

	var class, dispose, count *types.IndexedSymbol
	for i := range file.Symbols {
		switch file.Symbols[i].Name {
		case "UserService":
			class = &file.Symbols[i]
		case "dispose":
			dispose = &file.Symbols[i]
		case "count":
			count = &file.Symbols[i]
		}
	}

	require.NotNil(t, class)
	assert.Equal(t, types.KindClass, class.Kind)
	assert.Equal(t, types.AccessPublic, class.AccessLevel)
	assert.Contains(t, class.Inherits, "BaseService")
	assert.Contains(t, class.Inherits, "Disposable")

	require.NotNil(t, dispose)
	assert.Equal(t, types.KindMethod, dispose.Kind)
	assert.Equal(t, types.AccessPublic, dispose.AccessLevel)
	assert.Equal(t, "UserService", dispose.ContainerName)

	require.NotNil(t, count)
	assert.Equal(t, types.AccessPrivate, count.AccessLevel)
}

func TestExtractJavaPackagePrivateMethodDefaultsToInternal(t *testing.T) {
	src := `class Helper {
    int half(int n) {
        return n / 2;
    }
}
`
	file, ok := Extract("/abs/Helper.java", "Helper.java", []byte(src), types.LangJava)
	require.True(t, ok)

	var half *types.IndexedSymbol
	for i := range file.Symbols {
		if file.Symbols[i].Name == "half" {
			half = &file.Symbols[i]
		}
	}
	require.NotNil(t, half)
	assert.Equal(t, types.AccessInternal, half.AccessLevel)
}

func TestExtractJavaAnnotatedMethodIsTest(t *testing.T) {
	src := `public class UserServiceTest {
    @Test
    public void testDisposeClearsState() {
        assertTrue(true);
    }
}
`
	file, ok := Extract("/abs/UserServiceTest.java", "UserServiceTest.java", []byte(src), types.LangJava)
	require.True(t, ok)

	var testMethod *types.IndexedSymbol
	for i := range file.Symbols {
		if file.Symbols[i].Name == "testDisposeClearsState" {
			testMethod = &file.Symbols[i]
		}
	}
	require.NotNil(t, testMethod)
	assert.Equal(t, types.KindTest, testMethod.Kind)
}

func TestExtractJavaInterfaceAndEnum(t *testing.T) {
	src := `public interface Shape {
    double area();
}

enum Color {
    RED, GREEN, BLUE
}
`
	file, ok := Extract("/abs/Shapes.java", "Shapes.java", []byte(src), types.LangJava)
	require.True(t, ok)

	kinds := map[string]types.SymbolKind{}
	for _, s := range file.Symbols {
		kinds[s.Name] = s.Kind
	}
	assert.Equal(t, types.KindInterface, kinds["Shape"])
	assert.Equal(t, types.KindEnum, kinds["Color"])
}

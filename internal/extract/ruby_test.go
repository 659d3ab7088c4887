package extract

import (
	"testing"

	"github.com/benjamix95/codigo-sub004/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRubyClassWithVisibilityAndSelfMethod(t *testing.T) {
	src := `require 'set'
require_relative './base'

class Account < Base
  def deposit(amount)
    @balance += amount
  end

  private

  def self.default_currency
    "USD"
  end
end
`
	file, ok := Extract("/abs/account.rb", "account.rb", []byte(src), types.LangRuby)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"set", "./base"}, file.Imports)

	var class, deposit, defaultCurrency *types.IndexedSymbol
	for i := range file.Symbols {
		switch file.Symbols[i].Name {
		case "Account":
			class = &file.Symbols[i]
		case "deposit":
			deposit = &file.Symbols[i]
		case "default_currency":
			defaultCurrency = &file.Symbols[i]
		}
	}

	require.NotNil(t, class)
	assert.Equal(t, types.KindClass, class.Kind)
	assert.Equal(t, []string{"Base"}, class.Inherits)

	require.NotNil(t, deposit)
	assert.Equal(t, "Account", deposit.ContainerName)
	assert.Equal(t, types.AccessPublic, deposit.AccessLevel)

	require.NotNil(t, defaultCurrency)
	assert.Equal(t, types.AccessPrivate, defaultCurrency.AccessLevel)
	assert.True(t, defaultCurrency.IsStatic)
}

func TestExtractRubyModuleAndTestMethodNaming(t *testing.T) {
	src := `module Billing
  def test_charges_card
    true
  end
end
`
	file, ok := Extract("/abs/billing_test.rb", "billing_test.rb", []byte(src), types.LangRuby)
	require.True(t, ok)

	var mod, testMethod *types.IndexedSymbol
	for i := range file.Symbols {
		switch file.Symbols[i].Name {
		case "Billing":
			mod = &file.Symbols[i]
		case "test_charges_card":
			testMethod = &file.Symbols[i]
		}
	}

	require.NotNil(t, mod)
	assert.Equal(t, types.KindModule, mod.Kind)

	require.NotNil(t, testMethod)
	assert.Equal(t, types.KindTest, testMethod.Kind)
	assert.Equal(t, "Billing", testMethod.ContainerName)
}

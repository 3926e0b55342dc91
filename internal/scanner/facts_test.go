package scanner

import (
	"testing"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
	"github.com/ludo-technologies/atomscan/internal/testutil"
)

const checkoutFormSource = `import { useState, useEffect, useMemo } from 'react';
import {
  Button,
  Spinner,
} from '../../../atoms/Button';
import styles from './CheckoutForm.module.css';
const validators = require('../../../lib/validators');

const CheckoutForm = () => {
  const [items, setItems] = useState([]);
  const [total, setTotal] = useState(0);
  const discounted = useMemo(() => total * 0.9, [total]);
  useEffect(() => {
    setTotal(items.length);
  }, [items]);

  const handleSubmit = (event) => {
    event.preventDefault();
  };
  const validateItems = (values) => values.length > 0;
  function formatPrice(value) {
    return value.toFixed(2);
  }

  return null;
};

export default CheckoutForm;
`

func extractFromSource(t *testing.T, source string) domain.ComponentUnit {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{"CheckoutForm.tsx": source})

	unit := domain.ComponentUnit{
		Name:          "CheckoutForm",
		PrimarySource: "CheckoutForm.tsx",
	}
	NewFactExtractor(config.DefaultConfig().Conventions).Extract(&unit, dir)
	return unit
}

func TestFactExtractor_HookCount(t *testing.T) {
	unit := extractFromSource(t, checkoutFormSource)

	// useState x2, useMemo, useEffect
	testutil.AssertEqual(t, 4, unit.HookCount)
}

func TestFactExtractor_FunctionCount(t *testing.T) {
	unit := extractFromSource(t, checkoutFormSource)

	// handleSubmit, validateItems, formatPrice; the CheckoutForm arrow
	// definition itself is excluded
	testutil.AssertEqual(t, 3, unit.FunctionCount)
}

func TestFactExtractor_Imports(t *testing.T) {
	unit := extractFromSource(t, checkoutFormSource)

	expected := []string{
		"../../../atoms/Button",
		"../../../lib/validators",
		"./CheckoutForm.module.css",
		"react",
	}
	if len(unit.ImportedModules) != len(expected) {
		t.Fatalf("Expected %d imports, got %d: %v", len(expected), len(unit.ImportedModules), unit.ImportedModules)
	}
	for i, module := range expected {
		testutil.AssertEqual(t, module, unit.ImportedModules[i])
	}
}

func TestFactExtractor_CustomHookPrefix(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"Widget.jsx": "const Widget = () => { const s = withState(); const t = withTracker(); return null; };\n",
	})

	conv := config.DefaultConfig().Conventions
	conv.HookPrefix = "with"

	unit := domain.ComponentUnit{Name: "Widget", PrimarySource: "Widget.jsx"}
	NewFactExtractor(conv).Extract(&unit, dir)

	testutil.AssertEqual(t, 2, unit.HookCount)
}

func TestFactExtractor_NoPrimarySource(t *testing.T) {
	unit := domain.ComponentUnit{Name: "Empty"}
	NewFactExtractor(config.DefaultConfig().Conventions).Extract(&unit, t.TempDir())

	testutil.AssertEqual(t, 0, unit.HookCount)
	testutil.AssertEqual(t, 0, unit.FunctionCount)
	if unit.ImportedModules != nil {
		t.Error("No primary source should leave imports nil")
	}
}

func TestFactExtractor_UnreadableSourceFailsSoft(t *testing.T) {
	// Primary source recorded but file missing on disk: defaults kept
	unit := domain.ComponentUnit{Name: "Ghost", PrimarySource: "Ghost.tsx"}
	NewFactExtractor(config.DefaultConfig().Conventions).Extract(&unit, t.TempDir())

	testutil.AssertEqual(t, 0, unit.HookCount)
	testutil.AssertEqual(t, 0, unit.FunctionCount)
}

func TestFactExtractor_SideEffectAndDynamicImports(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"App.tsx": "import './global.css';\nconst load = () => import('../molecules/SearchBar');\nconst App = () => null;\nexport default App;\n",
	})

	unit := domain.ComponentUnit{Name: "App", PrimarySource: "App.tsx"}
	NewFactExtractor(config.DefaultConfig().Conventions).Extract(&unit, dir)

	expected := []string{"../molecules/SearchBar", "./global.css"}
	if len(unit.ImportedModules) != len(expected) {
		t.Fatalf("Expected %d imports, got %v", len(expected), unit.ImportedModules)
	}
	for i, module := range expected {
		testutil.AssertEqual(t, module, unit.ImportedModules[i])
	}
}

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-fol/pkg/axiom"
	"github.com/consensys/go-fol/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Axioms_01(t *testing.T) {
	checkAxioms(t, 0, "empty: ∃x[∀y[¬MemberOf(y,x)]]\n", "empty")
}

func Test_Axioms_02(t *testing.T) {
	checkAxioms(t, 0, "empty: exists x[forall y[~MemberOf(y,x)]]\n", "--ascii", "empty")
}

func Test_Axioms_03(t *testing.T) {
	checkAxioms(t, 0, "pairing: (forall x (forall y (exists z (and (MemberOf x z) (MemberOf y z)))))\n",
		"--lisp", "pairing")
}

func Test_Axioms_04(t *testing.T) {
	var logs bytes.Buffer
	//
	out := log.StandardLogger().Out
	log.SetOutput(&logs)
	//
	defer log.SetOutput(out)
	// Nothing is printed when any name is unknown
	checkAxioms(t, EXIT_UNKNOWN_AXIOM, "", "empty", "choice")
	assert.Contains(t, logs.String(), "choice")
}

func Test_Axioms_05(t *testing.T) {
	var buf bytes.Buffer
	//
	cmd := newAxiomsCmd(t)
	require.Equal(t, 0, runAxioms(&buf, cmd, nil))
	//
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(axiom.Names()))
	//
	for i, name := range axiom.Names() {
		assert.True(t, strings.HasPrefix(lines[i], name+": "))
	}
}

func Test_Axioms_06(t *testing.T) {
	// Output which is not a terminal is never highlighted by default
	assert.False(t, useColour(newAxiomsCmd(t), &bytes.Buffer{}))
	assert.True(t, useColour(newAxiomsCmd(t, "--colour"), &bytes.Buffer{}))
	assert.False(t, useColour(newAxiomsCmd(t, "--colour=false"), &bytes.Buffer{}))
}

func Test_Axioms_07(t *testing.T) {
	var buf bytes.Buffer
	//
	require.Equal(t, 0, runAxioms(&buf, newAxiomsCmd(t, "--colour"), []string{"empty"}))
	assert.Contains(t, buf.String(), termio.ResetAnsiEscape().Build())
}

func Test_Axioms_08(t *testing.T) {
	checkAxioms(t, 0, "; there is a set with no members\nempty: ∃x[∀y[¬MemberOf(y,x)]]\n", "--describe", "empty")
}

func Test_List_01(t *testing.T) {
	var buf bytes.Buffer
	//
	require.NoError(t, printList(&buf))
	//
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(axiom.Names()))
	assert.Equal(t, "extensionality   sets with the same members are equal", lines[0])
	assert.Equal(t, "empty            there is a set with no members", lines[1])
}

func newAxiomsCmd(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	//
	cmd := &cobra.Command{Use: "axioms"}
	addAxiomsFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	//
	return cmd
}

func checkAxioms(t *testing.T, status int, expected string, args ...string) {
	t.Helper()
	//
	var (
		buf   bytes.Buffer
		flags []string
		names []string
	)
	//
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			flags = append(flags, arg)
		} else {
			names = append(names, arg)
		}
	}
	// A buffer is never a terminal, so output is only highlighted by --colour
	cmd := newAxiomsCmd(t, flags...)
	//
	assert.Equal(t, status, runAxioms(&buf, cmd, names))
	assert.Equal(t, expected, buf.String())
}

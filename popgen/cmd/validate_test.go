package cmd

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/popgen/hooking"
	"github.com/sarchlab/popgen/recording"
)

const validFile = `
model: single
nregions: [{beg: 0, end: 1}]
sregions: []
recregions: [{beg: 0, end: 1}]
demography: {sizes: [100, 100]}
rates: [0.01, 0, 0.01]
`

const invalidFile = `
model: single
nregions: [{beg: 0, end: 1}]
sregions: []
recregions: [{beg: 0, end: 1}]
demography: {sizes: [100, 100]}
rates: [0.01, 0.01, 0.01]
`

var _ = Describe("validate", func() {
	var (
		dir     string
		good    string
		bad     string
		out     *bytes.Buffer
		logBuf  *bytes.Buffer
		logHook hooking.Hook
	)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		good = write("good.yaml", validFile)
		bad = write("bad.yaml", invalidFile)
		out = new(bytes.Buffer)
		logBuf = new(bytes.Buffer)
		logHook = hooking.NewValidationLogger(log.New(logBuf, "", 0))
	})

	It("should print ok for a valid file", func() {
		failed := validateFiles(out, []string{good}, nil)

		Expect(failed).To(Equal(0))
		Expect(out.String()).To(Equal(good + ": ok\n"))
	})

	It("should print the problem with an invalid file", func() {
		failed := validateFiles(out, []string{good, bad}, []hooking.Hook{logHook})

		Expect(failed).To(Equal(1))
		Expect(out.String()).To(ContainSubstring(bad + ": params: invalid value"))
		Expect(logBuf.String()).To(ContainSubstring("valid"))
		Expect(logBuf.String()).To(ContainSubstring("invalid"))
	})

	It("should count files that cannot be loaded", func() {
		failed := validateFiles(out, []string{filepath.Join(dir, "x.txt")}, nil)

		Expect(failed).To(Equal(1))
	})

	It("should record outcomes when asked to", func() {
		dbPath := filepath.Join(dir, "runs.sqlite3")
		rootCmd.SetOut(out)
		rootCmd.SetErr(new(bytes.Buffer))
		rootCmd.SetArgs([]string{"validate", good, bad, "--record", dbPath})

		err := rootCmd.Execute()

		Expect(err).To(MatchError(ContainSubstring("1 of 2 files")))

		reader, err := recording.NewReader(dbPath)
		Expect(err).ToNot(HaveOccurred())
		defer reader.Close()

		entries, err := recording.ReadValidations(context.Background(), reader)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Valid).To(BeTrue())
		Expect(entries[1].Valid).To(BeFalse())
	})
})

var _ = Describe("history", func() {
	var (
		dir    string
		dbPath string
		out    *bytes.Buffer
	)

	run := func(args ...string) error {
		out.Reset()
		rootCmd.SetOut(out)
		rootCmd.SetErr(new(bytes.Buffer))
		rootCmd.SetArgs(args)

		return rootCmd.Execute()
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		dbPath = filepath.Join(dir, "runs.sqlite3")
		out = new(bytes.Buffer)

		good := filepath.Join(dir, "good.yaml")
		bad := filepath.Join(dir, "bad.yaml")
		Expect(os.WriteFile(good, []byte(validFile), 0o644)).To(Succeed())
		Expect(os.WriteFile(bad, []byte(invalidFile), 0o644)).To(Succeed())

		Expect(run("validate", good, bad, good, "--record", dbPath)).
			To(HaveOccurred())
	})

	It("should list every recorded validation", func() {
		Expect(run("history", dbPath,
			"--failed=false", "--run=", "--limit=0", "--offset=0")).
			To(Succeed())

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(HaveSuffix("single_deme demes=1: ok"))
		Expect(lines[1]).To(ContainSubstring("#2"))
		Expect(lines[1]).To(ContainSubstring("params: invalid value"))
	})

	It("should page through the failed validations", func() {
		Expect(run("history", dbPath,
			"--failed=true", "--run=", "--limit=1", "--offset=0")).
			To(Succeed())

		Expect(out.String()).To(ContainSubstring("#2"))
		Expect(out.String()).ToNot(ContainSubstring("showing"))
	})

	It("should report the page shown", func() {
		Expect(run("history", dbPath,
			"--failed=false", "--run=", "--limit=1", "--offset=1")).
			To(Succeed())

		Expect(out.String()).To(ContainSubstring("#2"))
		Expect(out.String()).To(ContainSubstring("showing 2-2 of 3\n"))
	})

	It("should fail on a missing database", func() {
		err := run("history", filepath.Join(dir, "none.sqlite3"))

		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})

var _ = Describe("options", func() {
	It("should list the options of each model", func() {
		table := optionsTable()

		Expect(table).To(ContainSubstring(
			"single: nregions, sregions, recregions, demography, " +
				"prune_selected, rates, selfing_rate\n"))
		Expect(table).To(ContainSubstring(
			"multi: nregions, sregions, recregions, demography, " +
				"prune_selected, rates\n"))
	})
})

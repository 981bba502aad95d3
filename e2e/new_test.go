package e2e_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fsd new", func() {
	var dir string

	BeforeEach(func() {
		dir = tempWorkspace(featuresTSConfig)
	})

	It("creates the slice, its index file and one index per segment", func() {
		out := fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui,model")

		Expect(fileExists(dir, "src/features/auth/index.ts")).To(BeTrue())
		Expect(fileExists(dir, "src/features/auth/ui/index.ts")).To(BeTrue())
		Expect(fileExists(dir, "src/features/auth/model/index.ts")).To(BeTrue())
		Expect(fileExists(dir, "src/features/auth/api")).To(BeFalse())
		Expect(readFile(dir, "src/features/auth/index.ts")).To(BeEmpty())

		Expect(out).To(ContainSubstring("Successfully created slice 'auth' in 'features' with segments: ui, model"))
		Expect(out).To(ContainSubstring("create src/features/auth/ui/index.ts"))
	})

	It("detects the layer from a directory argument", func() {
		out := fsdOK(dir, "new", "src/entities", "--name", "user", "--segments", "model")

		Expect(out).To(ContainSubstring("Detected FSD Layer: entities"))
		Expect(fileExists(dir, "src/entities/user/model/index.ts")).To(BeTrue())
	})

	It("accepts the directory through --from", func() {
		fsdOK(dir, "new", "--from", filepath.Join(dir, "src", "app"), "--name", "providers", "--segments", "config")
		Expect(fileExists(dir, "src/app/providers/config/index.ts")).To(BeTrue())
	})

	It("warns and creates nothing for a directory that is not a layer", func() {
		out, err := fsd(dir, "new", "src/shared", "--name", "x", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(exitCode(err)).To(Equal(1))
		Expect(out).To(ContainSubstring("not a recognized FSD layer"))
		Expect(fileExists(dir, "src")).To(BeFalse())
	})

	It("reports a layer with no alias", func() {
		out, err := fsd(dir, "new", "--layer", "widgets", "--name", "header", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("Path alias for @widgets/* not found in tsconfig.json."))
		Expect(fileExists(dir, "src")).To(BeFalse())
	})

	It("never treats the root alias as a layer", func() {
		_, err := fsd(dir, "new", "src", "--name", "x", "--segments", "ui")
		Expect(err).To(HaveOccurred())
		Expect(fileExists(dir, "src/x")).To(BeFalse())
	})

	It("re-runs over an existing slice and truncates its index files", func() {
		fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")
		writeFile(dir, "src/features/auth/ui/index.ts", "export * from './Button'\n")

		fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")

		Expect(readFile(dir, "src/features/auth/ui/index.ts")).To(BeEmpty())
	})

	It("fails without mutation when a planned directory is a file", func() {
		writeFile(dir, "src/features/auth", "not a directory")

		out, err := fsd(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("Failed to create slice structure:"))
		Expect(readFile(dir, "src/features/auth")).To(Equal("not a directory"))
	})

	It("prints the plan and touches nothing with --dry-run", func() {
		out := fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui", "--dry-run")

		Expect(out).To(ContainSubstring("Would create slice 'auth' in 'features':"))
		Expect(out).To(ContainSubstring("mkdir  src/features/auth"))
		Expect(out).To(ContainSubstring("write  src/features/auth/ui/index.ts"))
		Expect(fileExists(dir, "src")).To(BeFalse())
	})

	DescribeTable("rejects invalid slice names",
		func(name string) {
			out, err := fsd(dir, "new", "--layer", "features", "--name", name, "--segments", "ui")
			Expect(err).To(HaveOccurred())
			Expect(out).To(ContainSubstring("error:"))
			Expect(fileExists(dir, "src")).To(BeFalse())
		},
		Entry("dot", "."),
		Entry("double dot", ".."),
		Entry("separator", "foo/bar"),
		Entry("leading dot", ".hidden"),
		Entry("trailing dot", "trailing."),
		Entry("trailing space", "trailing "),
		Entry("whitespace", "   "),
	)

	It("rejects unknown segments", func() {
		out, err := fsd(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui,views")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring(`invalid segment "views"`))
	})

	It("collapses repeated segments", func() {
		out := fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui,ui,lib")
		Expect(out).To(ContainSubstring("with segments: ui, lib"))
	})

	It("reports an unparsable tsconfig.json", func() {
		writeFile(dir, "tsconfig.json", `{"compilerOptions": {`)

		out, err := fsd(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("Error reading or parsing tsconfig.json:"))
	})

	It("warns when tsconfig.json has no paths", func() {
		writeFile(dir, "tsconfig.json", `{"compilerOptions": {"strict": true}}`)

		out, err := fsd(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("warning: Could not read or parse tsconfig.json paths"))
	})

	It("finds the workspace from a subdirectory", func() {
		writeFile(dir, "src/features/.keep", "")
		fsdOK(filepath.Join(dir, "src", "features"), "new", "--layer", "entities", "--name", "post", "--segments", "api")
		Expect(fileExists(dir, "src/entities/post/api/index.ts")).To(BeTrue())
	})

	It("honours the project config", func() {
		writeFile(dir, ".fsd.yaml", "extension: tsx\n")
		fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")
		Expect(fileExists(dir, "src/features/auth/ui/index.tsx")).To(BeTrue())
	})

	It("reads a tsconfig at a configured path", func() {
		Expect(os.Rename(filepath.Join(dir, "tsconfig.json"), filepath.Join(dir, "tsconfig.base.json"))).To(Succeed())
		writeFile(dir, ".fsd.yaml", "tsconfig: tsconfig.base.json\n")

		fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "ui")
		Expect(fileExists(dir, "src/features/auth/index.ts")).To(BeTrue())
	})

	It("creates slices in a layer aliased outside the workspace", func() {
		repo := tempWorkspace("")
		writeFile(repo, "apps/web/tsconfig.json", `{
  "compilerOptions": {
    "paths": {
      "@features/*": ["src/features/*"],
      "@shared/*": ["../../packages/shared/*"]
    }
  }
}`)
		web := filepath.Join(repo, "apps", "web")

		out := fsdOK(web, "new", "--layer", "shared", "--name", "button", "--segments", "ui")

		Expect(out).To(ContainSubstring("Successfully created slice 'button' in 'shared' with segments: ui"))
		Expect(fileExists(repo, "packages/shared/button/index.ts")).To(BeTrue())
		Expect(fileExists(repo, "packages/shared/button/ui/index.ts")).To(BeTrue())

		fsdOK(web, "new", filepath.Join(repo, "packages", "shared"), "--name", "card", "--segments", "lib")
		Expect(fileExists(repo, "packages/shared/card/lib/index.ts")).To(BeTrue())

		listing := fsdOK(web, "list")
		Expect(listing).To(MatchRegexp(`button\s+ui`))
		Expect(listing).To(MatchRegexp(`card\s+lib`))
		Expect(fsdOK(web, "layers")).To(MatchRegexp(`✓ shared`))
	})

	It("reports a missing workspace", func() {
		empty := tempWorkspace("")
		out, err := fsd(empty, "new", "--layer", "features", "--name", "auth", "--segments", "ui")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("No workspace folder found."))
	})
})

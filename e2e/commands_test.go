package e2e_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fsd layers", func() {
	It("lists every aliased layer in declaration order", func() {
		dir := tempWorkspace(featuresTSConfig)
		writeFile(dir, "src/features/.keep", "")

		out := fsdOK(dir, "layers")

		Expect(out).To(ContainSubstring("@app/*"))
		Expect(out).To(MatchRegexp(`✓ features\s+@features/\*\s+src/features`))
		Expect(out).To(MatchRegexp(`✗ entities\s+@entities/\*\s+src/entities`))
		Expect(out).NotTo(ContainSubstring("@/*"))
		Expect(out).To(MatchRegexp(`(?s)app.*features.*entities`))
	})

	It("fails on an unparsable tsconfig.json", func() {
		dir := tempWorkspace(`{"compilerOptions": `)
		_, err := fsd(dir, "layers")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("fsd list", func() {
	var dir string

	BeforeEach(func() {
		dir = tempWorkspace(featuresTSConfig)
		fsdOK(dir, "new", "--layer", "features", "--name", "auth", "--segments", "model,ui")
		fsdOK(dir, "new", "--layer", "features", "--name", "cart", "--segments", "lib")
		fsdOK(dir, "new", "--layer", "entities", "--name", "user", "--segments", "api")
		writeFile(dir, "src/features/generated/index.ts", "")
		writeFile(dir, ".gitignore", "src/features/generated\n")
	})

	It("shows slices with their segments and skips ignored entries", func() {
		out := fsdOK(dir, "list")

		Expect(out).To(MatchRegexp(`auth\s+ui, model`))
		Expect(out).To(MatchRegexp(`cart\s+lib`))
		Expect(out).To(MatchRegexp(`user\s+api`))
		Expect(out).NotTo(ContainSubstring("generated"))
		Expect(out).To(MatchRegexp(`app \(src/app\)\s+\(no slices\)`))
	})

	It("limits the listing to one layer", func() {
		out := fsdOK(dir, "list", "entities")

		Expect(out).To(ContainSubstring("user"))
		Expect(out).NotTo(ContainSubstring("auth"))
	})

	It("fails for an unknown layer", func() {
		_, err := fsd(dir, "list", "widgets")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("fsd schema", func() {
	It("outputs valid JSON with expected top-level keys", func() {
		dir := tempWorkspace(featuresTSConfig)
		out := fsdOK(dir, "schema")

		var schema map[string]any
		Expect(json.Unmarshal([]byte(out), &schema)).To(Succeed())
		Expect(schema).To(HaveKey("description"))

		props, ok := schema["properties"].(map[string]any)
		Expect(ok).To(BeTrue(), "schema should have properties")
		Expect(props).To(HaveKey("tsconfig"))
		Expect(props).To(HaveKey("extension"))
		Expect(props).To(HaveKey("layers"))
		Expect(props).To(HaveKey("segments"))
	})
})

var _ = Describe("fsd validate", func() {
	var dir string

	BeforeEach(func() {
		dir = tempWorkspace(featuresTSConfig)
	})

	It("prints valid without a config file", func() {
		Expect(fsdOK(dir, "validate")).To(Equal("valid"))
	})

	It("prints valid for a correct config", func() {
		writeFile(dir, ".fsd.yaml", "extension: tsx\nsegments: [ui, model]\n")
		Expect(fsdOK(dir, "validate")).To(Equal("valid"))
	})

	It("reports each problem", func() {
		writeFile(dir, ".fsd.yaml", "extension: .ts\nlayers: [features, features]\nsegments: [views]\n")

		out, err := fsd(dir, "validate")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("must not start with a dot"))
		Expect(out).To(ContainSubstring(`duplicate layer "features"`))
		Expect(out).To(ContainSubstring(`unknown segment "views"`))
	})

	It("reports malformed YAML", func() {
		writeFile(dir, ".fsd.yaml", "layers: [unclosed\n")
		_, err := fsd(dir, "validate")
		Expect(err).To(HaveOccurred())
	})

	It("validates the file given with --config", func() {
		writeFile(dir, ".fsd.yaml", "extension: tsx\n")
		writeFile(dir, "other.yaml", "extension: js/x\n")
		out, err := fsd(dir, "validate", "--config", "other.yaml")

		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("must not contain path separators"))
	})
})

var _ = Describe("fsd explain", func() {
	It("documents every command", func() {
		out := fsdOK(tempWorkspace(""), "explain")
		for _, cmd := range []string{"new [dir]", "layers", "list", "schema", "validate", "version"} {
			Expect(out).To(ContainSubstring(cmd))
		}
		Expect(out).To(ContainSubstring(".fsd.yaml"))
	})
})

var _ = Describe("fsd version", func() {
	It("prints the version", func() {
		Expect(fsdOK(tempWorkspace(""), "version")).To(HavePrefix("fsd "))
	})
})

package ascii_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciify/internal/ascii"
)

var _ = Describe("Quantize", func() {
	It("maps the luminance extremes onto the ends of the ramp", func() {
		Expect(ascii.RampIndex(0)).To(Equal(0))
		Expect(ascii.CharFor(0)).To(Equal(byte('@')))
		Expect(ascii.RampIndex(255)).To(Equal(9))
		Expect(ascii.CharFor(255)).To(Equal(byte(' ')))
	})

	It("clamps values outside [0, 255]", func() {
		Expect(ascii.RampIndex(-40)).To(Equal(0))
		Expect(ascii.RampIndex(1e6)).To(Equal(len(ascii.Ramp) - 1))
	})

	DescribeTable("floors the scaled luminance",
		func(l float64, want int) {
			Expect(ascii.RampIndex(l)).To(Equal(want))
		},
		Entry("just below the first boundary", 28.3, 0),
		Entry("just above the first boundary", 28.4, 1),
		Entry("midpoint", 127.5, 4),
		Entry("just below white", 254.9, 8),
	)

	It("never lets a brighter cell pick a heavier character", func() {
		prev := ascii.RampIndex(0)
		for l := 0.0; l <= 255; l += 0.25 {
			idx := ascii.RampIndex(l)
			Expect(idx).To(BeNumerically(">=", prev))
			prev = idx
		}
	})

	It("joins rows without a trailing newline", func() {
		g := ascii.Grid{
			{0, 255},
			{255, 0},
		}
		Expect(ascii.Quantize(g)).To(Equal(ascii.Art("@ \n @")))
	})

	It("returns empty art for an empty grid", func() {
		Expect(ascii.Quantize(nil)).To(BeEmpty())
		Expect(ascii.Quantize(ascii.Grid{})).To(BeEmpty())
	})

	It("computes BT.601 luminance", func() {
		Expect(ascii.Luminance(255, 0, 0)).To(BeNumerically("~", 76.245, 1e-9))
		Expect(ascii.Luminance(0, 255, 0)).To(BeNumerically("~", 149.685, 1e-9))
		Expect(ascii.Luminance(0, 0, 255)).To(BeNumerically("~", 29.07, 1e-9))
		Expect(ascii.Luminance(255, 255, 255)).To(BeNumerically("~", 255, 1e-9))
	})

	Describe("Art", func() {
		It("reports its dimensions", func() {
			art := ascii.Art("@@@\n.\n  ")
			Expect(art.Height()).To(Equal(3))
			Expect(art.Width()).To(Equal(3))
			Expect(art.Lines()).To(Equal([]string{"@@@", ".", "  "}))
		})

		It("treats empty art as zero rows", func() {
			var art ascii.Art
			Expect(art.Empty()).To(BeTrue())
			Expect(art.Height()).To(Equal(0))
			Expect(art.Width()).To(Equal(0))
		})

		It("only contains ramp characters after conversion", func() {
			art := ascii.Convert(gradient(64, 32), 40)
			for _, r := range strings.ReplaceAll(art.String(), "\n", "") {
				Expect(ascii.Ramp).To(ContainSubstring(string(r)))
			}
		})
	})
})

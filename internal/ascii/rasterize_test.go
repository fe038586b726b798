package ascii_test

import (
	"image"
	"image/color"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciify/internal/ascii"
)

var _ = Describe("Rasterize", func() {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	It("renders a 2x2 white image as 10 rows of 20 spaces", func() {
		art := ascii.Convert(solid(2, 2, white), 20)
		lines := art.Lines()
		Expect(lines).To(HaveLen(10))
		for _, line := range lines {
			Expect(line).To(Equal(strings.Repeat(" ", 20)))
		}
	})

	It("renders a 2x2 black image as 10 rows of 20 @", func() {
		art := ascii.Convert(solid(2, 2, black), 20)
		Expect(art).To(Equal(ascii.Art(strings.TrimSuffix(strings.Repeat(strings.Repeat("@", 20)+"\n", 10), "\n"))))
	})

	DescribeTable("follows the dimension law",
		func(w, h, width int) {
			want := ascii.OutputHeight(w, h, width)
			Expect(want).To(Equal(int(float64(width) * (float64(h) / float64(w)) * 0.5)))

			g := ascii.Rasterize(gradient(w, h), width)
			Expect(g.Height()).To(Equal(want))
			if want > 0 {
				Expect(g.Width()).To(Equal(width))
			}

			art := ascii.Quantize(g)
			Expect(art.Height()).To(Equal(want))
			for _, line := range art.Lines() {
				if want > 0 {
					Expect(line).To(HaveLen(width))
				}
			}
		},
		Entry("square", 100, 100, 100),
		Entry("landscape", 640, 480, 80),
		Entry("portrait", 300, 900, 20),
		Entry("upscale", 3, 5, 400),
		Entry("odd width", 17, 13, 33),
	)

	It("returns an empty grid when the height rounds to zero", func() {
		g := ascii.Rasterize(gradient(1000, 2), 20)
		Expect(g.Empty()).To(BeTrue())
		Expect(ascii.Quantize(g)).To(BeEmpty())
	})

	It("tolerates non-positive widths and nil images", func() {
		Expect(ascii.Rasterize(solid(4, 4, white), 0).Empty()).To(BeTrue())
		Expect(ascii.Rasterize(solid(4, 4, white), -5).Empty()).To(BeTrue())
		Expect(ascii.Rasterize(nil, 20).Empty()).To(BeTrue())
	})

	It("samples images whose bounds do not start at the origin", func() {
		img := image.NewRGBA(image.Rect(10, 10, 14, 14))
		for y := 10; y < 14; y++ {
			for x := 10; x < 14; x++ {
				img.Set(x, y, black)
			}
		}
		art := ascii.Convert(img, 4)
		Expect(art).To(Equal(ascii.Art("@@@@\n@@@@")))
	})

	It("treats transparent pixels as black", func() {
		art := ascii.Convert(solid(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 0}), 20)
		Expect(strings.Trim(art.String(), "@\n")).To(BeEmpty())
	})

	It("is deterministic", func() {
		img := gradient(120, 80)
		first := ascii.Convert(img, 60)
		for i := 0; i < 5; i++ {
			Expect(ascii.Convert(img, 60)).To(Equal(first))
		}
	})

	It("keeps gradients dark on the left and light on the right", func() {
		art := ascii.Convert(gradient(200, 100), 50)
		for _, line := range art.Lines() {
			Expect(line[0]).To(Equal(byte('@')))
			Expect(". ").To(ContainSubstring(string(line[len(line)-1])))
		}
	})

	Describe("resamplers", func() {
		It("resolves every registered name", func() {
			for _, name := range ascii.ResamplerNames() {
				rs, err := ascii.GetResampler(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(rs.Name()).To(Equal(name))
			}
		})

		It("defaults to nearest", func() {
			rs, err := ascii.GetResampler("")
			Expect(err).NotTo(HaveOccurred())
			Expect(rs).To(Equal(ascii.Nearest))
		})

		It("rejects unknown names", func() {
			_, err := ascii.GetResampler("sinc")
			Expect(err).To(MatchError(ascii.ErrUnknownResampler))
		})

		It("produces the same dimensions with every filter", func() {
			img := gradient(90, 60)
			want := ascii.OutputHeight(90, 60, 45)
			for _, name := range ascii.ResamplerNames() {
				rs, _ := ascii.GetResampler(name)
				g := ascii.RasterizeWith(img, 45, rs)
				Expect(g.Height()).To(Equal(want), name)
				Expect(g.Width()).To(Equal(45), name)
			}
		})

		It("keeps solid images solid with every filter", func() {
			for _, name := range ascii.ResamplerNames() {
				rs, _ := ascii.GetResampler(name)
				art := ascii.ConvertWith(solid(8, 8, black), 20, rs)
				Expect(strings.Trim(art.String(), "@\n")).To(BeEmpty(), name)
			}
		})
	})
})

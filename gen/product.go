package gen

import "github.com/aldas/go-n2k"

// ToProduct adapts a decoded PGN 126996 message to the core n2k.Product
// value, the form transports and higher level code outside this package
// deal in instead of the generated struct directly.
func (p *ProductInformation) ToProduct() n2k.Product {
	return n2k.NewProduct(
		p.Nmea2000Version(),
		p.ProductCode(),
		p.ModelId(),
		p.SoftwareVersionCode(),
		p.ModelVersion(),
		p.ModelSerialCode(),
		p.CertificationLevel(),
		p.LoadEquivalency(),
	)
}

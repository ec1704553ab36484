package dto

// ImpresoraConfigRequest carries the discriminated printer config.
// Field requirements per type are checked by impresora.Config.Validar.
type ImpresoraConfigRequest struct {
	Tipo      string `json:"type" validate:"required,oneof=usb network windows"`
	VendorID  int    `json:"vendor_id"`
	ProductID int    `json:"product_id"`
	IP        string `json:"ip"`
	Puerto    int    `json:"port"`
	Nombre    string `json:"name"`
}

type DetectarRequest struct {
	// Hosts to probe for a network printer; the scan is bounded to this list.
	Hosts []string `json:"hosts" validate:"required,min=1,max=64,dive,required"`
}

package entity

// Mall centro comercial. Datos de referencia para el panel del administrador y
// el sembrado de demostración.
type Mall struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	OperatingHours string `json:"operatingHours"`
	ShopCount      int    `json:"shopCount"`
	GateCount      int    `json:"gateCount"`
}

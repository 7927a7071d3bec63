package coupon

type Type string

const (
	TypeRestaurants Type = "restaurants"
	TypeElectronics Type = "electronics"
	TypeFood        Type = "food"
	TypeHealth      Type = "health"
	TypeSports      Type = "sports"
	TypeCamping     Type = "camping"
	TypeTravel      Type = "travel"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRestaurants, TypeElectronics, TypeFood, TypeHealth, TypeSports, TypeCamping, TypeTravel:
		return true
	default:
		return false
	}
}

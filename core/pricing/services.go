package pricing

import "moverz/core/move"

// ServicesTotal sums the selected add-on services in euros. Services are
// priced at face value: they are added after every multiplicative factor
// and the decote never touches them.
func (e *Engine) ServicesTotal(services move.Services, volumeM3 float64) float64 {
	total := 0.0
	if services.FurnitureLift {
		total += e.tariff.FurnitureLiftEur
	}
	switch services.Piano {
	case move.PianoUpright:
		total += e.tariff.PianoUprightEur
	case move.PianoGrand:
		total += e.tariff.PianoGrandEur
	}
	if services.Debarras {
		total += e.tariff.DebarrasFlatEur + e.tariff.DebarrasPerM3Eur*volumeM3
	}
	return total
}

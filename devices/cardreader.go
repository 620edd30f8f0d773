// cardreader.go

// Copyright (C) 2025  Mike Wright

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package devices

import "github.com/wrightmikea/s1130em/memory"

// CardColumns is the number of 16-bit column words on one punched card.
const CardColumns = 80

const (
	// CardReader2501Code is the 2501 card reader's device code.
	CardReader2501Code = 9

	crIntLevel = 4

	// status word bits
	crStatusLastCard   = 0x1000
	crStatusOpComplete = 0x0800
	crStatusNotReady   = 0x0001
)

// Card is one 80-column punched card.
type Card [CardColumns]uint16

// CardFromText punches a card from an ASCII line, one character code per
// column; unused columns stay zero.
func CardFromText(line string) Card {
	var card Card
	for i := 0; i < len(line) && i < CardColumns; i++ {
		card[i] = uint16(line[i])
	}
	return card
}

// CardReader2501 is the block-mode 2501 card reader.  InitRead transfers one
// card through the IOCC's word-count area (negative count at the WCA, buffer
// from WCA+1) and raises a level-4 completion interrupt whose ILSW carries
// the op-complete and last-card indicators.
type CardReader2501 struct {
	hopper []Card

	opComplete bool
	lastCard   bool
	ilsw       uint16
}

func NewCardReader2501() *CardReader2501 {
	return &CardReader2501{}
}

func (cr *CardReader2501) Code() uint8 {
	return CardReader2501Code
}

func (cr *CardReader2501) Name() string {
	return "2501 Card Reader"
}

// LoadCard places one card at the back of the input hopper.
func (cr *CardReader2501) LoadCard(card Card) {
	cr.hopper = append(cr.hopper, card)
}

// LoadCards places a deck in the hopper, preserving order.
func (cr *CardReader2501) LoadCards(cards []Card) {
	cr.hopper = append(cr.hopper, cards...)
}

// HopperCount returns the number of unread cards.
func (cr *CardReader2501) HopperCount() int {
	return len(cr.hopper)
}

func (cr *CardReader2501) statusWord() uint16 {
	var status uint16
	if cr.lastCard {
		status |= crStatusLastCard
	}
	if cr.opComplete {
		status |= crStatusOpComplete
	}
	if len(cr.hopper) == 0 && !cr.opComplete {
		status |= crStatusNotReady
	}
	return status
}

func (cr *CardReader2501) Execute(iocc Iocc, mem *memory.Memory, irq Raiser) error {
	switch iocc.Function {
	case Sense:
		status := cr.statusWord()
		// modifier bit 0x01 resets the indicators after reporting
		if iocc.Modifiers&0x01 != 0 {
			cr.opComplete = false
			cr.lastCard = false
		}
		return mem.WriteWord(iocc.WCA, status)

	case SenseIlsw:
		ilsw := cr.ilsw
		cr.ilsw = 0
		return mem.WriteWord(iocc.WCA, ilsw)

	case InitRead:
		if len(cr.hopper) == 0 {
			return &NoDataError{DevCode: CardReader2501Code}
		}
		wc, err := mem.ReadWord(iocc.WCA)
		if err != nil {
			return err
		}
		count := -int16(wc)
		if count < 0 {
			count = 0
		}
		if count > CardColumns {
			count = CardColumns
		}
		card := cr.hopper[0]
		// validate the whole destination range before any column lands
		if count > 0 {
			if _, err := mem.ReadWord(iocc.WCA + uint16(count)); err != nil {
				return err
			}
		}
		for i := int16(0); i < count; i++ {
			mem.WriteWord(iocc.WCA+1+uint16(i), card[i])
		}
		cr.hopper = cr.hopper[1:]
		cr.opComplete = true
		cr.lastCard = len(cr.hopper) == 0
		cr.ilsw = crStatusOpComplete
		if cr.lastCard {
			cr.ilsw |= crStatusLastCard
		}
		if irq != nil {
			return irq.RaiseInterrupt(crIntLevel, CardReader2501Code, cr.ilsw)
		}
		return nil

	default:
		return &UnsupportedFunctionError{DevCode: CardReader2501Code, Function: iocc.Function}
	}
}

// Reset clears the indicators; the hopper contents are retained.
func (cr *CardReader2501) Reset() {
	cr.opComplete = false
	cr.lastCard = false
	cr.ilsw = 0
}

// Status reports the indicator word; the 2501 transfers a card within one
// Execute call, so it is never observed busy.
func (cr *CardReader2501) Status() Status {
	return Status{Busy: false, Word: cr.statusWord()}
}

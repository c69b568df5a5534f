package rpgtoolkit

import (
	"github.com/KirkDiggler/msh-chargen/internal/engine"
	"github.com/KirkDiggler/msh-chargen/internal/engine/catalog"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// RollContacts opens the Contacts phase. Contacts granted by the form stay
// on the list, locked. A form with no contacts forces the minimum to zero.
// A form granting exactly one contact forces it to one and keeps the class
// lists closed until a contact is bought, as does a rolled minimum of one
// already covered by a granted contact. Forms that say nothing about
// contacts keep the rolled minimum.
func (a *Adapter) RollContacts(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RollContacts {
			return gateClosed("rolling contacts")
		}
		if n := w.Contacts.Budget.Purchased; n > 0 {
			w.SetResources(w.Resources() + n*catalog.ContactCost)
		}

		row, err := rollOn(a, catalog.SlotTable)
		if err != nil {
			return err
		}
		state := engine.ContactState{
			Rolled: true,
			Budget: engine.Budget{Min: row.Contacts.Min, Max: row.Contacts.Max},
		}
		if w.Bonus.InitialContacts > 0 {
			for _, name := range w.SeededContacts {
				state.Items = append(state.Items, engine.Contact{Name: name, Locked: true})
			}
		}
		switch initial := w.Bonus.InitialContacts; {
		case initial == 0:
			state.Budget.Min = 0
		case initial == 1:
			state.Budget.Min = 1
			state.ClassListDisabled = true
		case initial >= 2 && state.Budget.Min == 1 && len(state.Items) > 0:
			state.ClassListDisabled = true
		}
		w.Contacts = state
		return nil
	})
}

// BuyContact trades one Resources rank for one more contact slot
func (a *Adapter) BuyContact(c *engine.Character) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().BuyContact {
			return gateClosed("buying a contact")
		}
		budget := &w.Contacts.Budget
		if w.Resources()-catalog.ContactCost < 0 {
			return errors.InsufficientResources("not enough Resources to purchase another contact")
		}
		if len(w.Contacts.Items) == budget.Max || budget.Min == budget.Max {
			return errors.NoSlotAvailable("not enough contact slots to purchase another contact")
		}

		w.SetResources(w.Resources() - catalog.ContactCost)
		budget.Min++
		budget.Purchased++
		w.Contacts.ClassListDisabled = false
		return nil
	})
}

// AddContact adds a contact from one of the class lists
func (a *Adapter) AddContact(c *engine.Character, input *engine.AddContactInput) error {
	if input == nil || input.Contact == "" {
		return errors.NoSelectionMade("a contact must be selected")
	}
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Contacts.Rolled || w.Contacts.ClassListDisabled {
			return gateClosed("adding a contact")
		}
		if len(w.Contacts.Items) >= w.Contacts.Budget.Min {
			return errors.NotEnoughSlotsf("all %d contact slots are filled", w.Contacts.Budget.Min)
		}
		if _, err := catalog.Contacts(input.Class); err != nil {
			return err
		}
		if !catalog.ContactInClass(input.Class, input.Contact) {
			return errors.InvalidArgumentf("%q is not a %s contact", input.Contact, input.Class)
		}
		for _, ct := range w.Contacts.Items {
			if ct.Name == input.Contact {
				return errors.InvalidArgumentf("%q is already a contact", input.Contact)
			}
		}
		w.Contacts.Items = append(w.Contacts.Items, engine.Contact{Name: input.Contact, Class: input.Class})
		return nil
	})
}

// RemoveContact drops a contact, returning a bought slot's Resources
func (a *Adapter) RemoveContact(c *engine.Character, index int) error {
	return a.mutate(c, func(w *engine.Character) error {
		if !w.Gates().RemoveContact {
			return gateClosed("removing a contact")
		}
		if index < 0 || index >= len(w.Contacts.Items) {
			return errors.InvalidArgumentf("contact %d does not exist", index)
		}
		if w.Contacts.Items[index].Locked {
			return errors.FailedPreconditionf("%s is granted by the physical form", w.Contacts.Items[index].Name)
		}
		budget := &w.Contacts.Budget
		budget.Min--
		if budget.Purchased > 0 {
			budget.Purchased--
			w.SetResources(w.Resources() + catalog.ContactCost)
		}
		w.Contacts.Items = removeAt(w.Contacts.Items, index)
		return nil
	})
}

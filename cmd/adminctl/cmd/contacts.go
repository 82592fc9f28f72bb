package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contactdesk/contacts-system/internal/client/controller"
	"github.com/contactdesk/contacts-system/internal/client/form"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage contacts",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list := controller.NewContactList(app.api, confirm, app.log)
		list.Load(cmd.Context())

		if len(list.Contacts) == 0 {
			fmt.Println("No contacts.")
			return nil
		}
		for _, c := range list.Contacts {
			fmt.Printf("%s  %s %s", c.ID, c.FirstName, c.LastName)
			if c.Email != "" {
				fmt.Printf("  <%s>", c.Email)
			}
			for _, p := range c.PhoneNumbers {
				fmt.Printf("  %s", p.PhoneNumber)
			}
			fmt.Println()
		}
		return nil
	},
}

var contactsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a contact's full record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contact, err := app.api.GetContact(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Id:          %s\n", contact.ID)
		fmt.Printf("Name:        %s %s\n", contact.FirstName, contact.LastName)
		fmt.Printf("Email:       %s\n", contact.Email)
		fmt.Printf("Mother name: %s\n", contact.MotherName)
		fmt.Printf("Birth date:  %s\n", contact.BirthDate)
		fmt.Printf("TAJ number:  %s\n", contact.TajNumber)
		fmt.Printf("Tax id:      %s\n", contact.TaxID)
		for _, p := range contact.PhoneNumbers {
			fmt.Printf("Phone:       %s\n", p.PhoneNumber)
		}
		for _, a := range contact.Addresses {
			fmt.Printf("Address:     %s, %s %s\n", a.City, a.Street, a.ZipCode)
		}
		return nil
	},
}

var contactDraft struct {
	firstName  string
	lastName   string
	email      string
	motherName string
	birthDate  string
	tajNumber  string
	taxID      string
	phones     []string
	addresses  []string
}

// applyContactFlags copies the command-line values onto the draft. Only flags
// the user actually set overwrite the draft's current values, so "edit" keeps
// untouched fields.
func applyContactFlags(cmd *cobra.Command, f *form.ContactForm) error {
	setIf := func(flag string, dst *string, val string) {
		if cmd.Flags().Changed(flag) {
			*dst = val
		}
	}
	setIf("first-name", &f.FirstName, contactDraft.firstName)
	setIf("last-name", &f.LastName, contactDraft.lastName)
	setIf("email", &f.Email, contactDraft.email)
	setIf("mother-name", &f.MotherName, contactDraft.motherName)
	setIf("birth-date", &f.BirthDate, contactDraft.birthDate)
	setIf("taj-number", &f.TajNumber, contactDraft.tajNumber)
	setIf("tax-id", &f.TaxID, contactDraft.taxID)

	if cmd.Flags().Changed("phone") {
		f.PhoneNumbers = contactDraft.phones
	}
	if cmd.Flags().Changed("address") {
		f.Addresses = f.Addresses[:0]
		for _, raw := range contactDraft.addresses {
			parts := strings.SplitN(raw, ";", 3)
			if len(parts) != 3 {
				return fmt.Errorf("address %q: expected street;city;zipCode", raw)
			}
			f.Addresses = append(f.Addresses, form.AddressEntry{
				Street:  strings.TrimSpace(parts[0]),
				City:    strings.TrimSpace(parts[1]),
				ZipCode: strings.TrimSpace(parts[2]),
			})
		}
	}
	return nil
}

// registerContactFlags attaches the shared contact field flags.
func registerContactFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&contactDraft.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&contactDraft.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&contactDraft.email, "email", "", "email address")
	cmd.Flags().StringVar(&contactDraft.motherName, "mother-name", "", "mother's name")
	cmd.Flags().StringVar(&contactDraft.birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&contactDraft.tajNumber, "taj-number", "", "TAJ number")
	cmd.Flags().StringVar(&contactDraft.taxID, "tax-id", "", "tax id")
	cmd.Flags().StringSliceVar(&contactDraft.phones, "phone", nil, "phone number (repeatable)")
	cmd.Flags().StringSliceVar(&contactDraft.addresses, "address", nil, "address as street;city;zipCode (repeatable)")
}

var contactsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a contact",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list := controller.NewContactList(app.api, confirm, app.log)
		list.StartCreate()
		if err := applyContactFlags(cmd, list.Draft()); err != nil {
			return err
		}
		return submitContactDraft(cmd, list)
	},
}

var contactsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a contact; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := controller.NewContactList(app.api, confirm, app.log)
		if err := list.StartEdit(cmd.Context(), args[0]); err != nil {
			return err
		}
		if err := applyContactFlags(cmd, list.Draft()); err != nil {
			return err
		}
		return submitContactDraft(cmd, list)
	},
}

func submitContactDraft(cmd *cobra.Command, list *controller.ContactList) error {
	draft := list.Draft()
	if err := list.SubmitDraft(cmd.Context()); err != nil {
		printFormErrors(draft.Errors())
		if errors.Is(err, form.ErrInvalid) {
			return fmt.Errorf("contact not saved: fix the fields above")
		}
		return err
	}
	fmt.Println("Contact saved.")
	return nil
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := controller.NewContactList(app.api, confirm, app.log)
		ev := &controller.Event{}
		if err := list.DeleteClicked(cmd.Context(), args[0], ev); err != nil {
			return err
		}
		return nil
	},
}

// printFormErrors renders a form's error map, field-keyed entries first.
func printFormErrors(errs map[string]string) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == form.GenericErrorKey {
			continue
		}
		fmt.Fprintf(os.Stderr, "  %s: %s\n", k, errs[k])
	}
	if msg, ok := errs[form.GenericErrorKey]; ok {
		fmt.Fprintf(os.Stderr, "  %s\n", msg)
	}
}

func init() {
	registerContactFlags(contactsCreateCmd)
	registerContactFlags(contactsEditCmd)
	contactsCmd.AddCommand(contactsListCmd, contactsShowCmd, contactsCreateCmd, contactsEditCmd, contactsDeleteCmd)
	rootCmd.AddCommand(contactsCmd)
}

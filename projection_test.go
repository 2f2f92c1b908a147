package vessel_test

import (
	"strings"
	"testing"

	"github.com/davidroman0O/vessel-go"
)

type profile struct {
	Name string
	Age  int
}

func TestSelectDerivesValue(t *testing.T) {
	person := vessel.New(profile{Name: "John", Age: 30})

	name := vessel.Select(person, func(p profile) string {
		return p.Name
	})

	if name.Get() != "John" {
		t.Errorf("Expected projected name to be 'John', got '%s'", name.Get())
	}

	person.Set(profile{Name: "Jane", Age: 30})

	if name.Get() != "Jane" {
		t.Errorf("Expected projected name to be 'Jane', got '%s'", name.Get())
	}
}

func TestProjectionNotifiesOnlyOnChange(t *testing.T) {
	person := vessel.New(profile{Name: "John", Age: 30})

	names := []string{}
	ages := []int{}

	name := vessel.Select(person, func(p profile) string { return p.Name })
	age := vessel.Select(person, func(p profile) int { return p.Age })

	name.Subscribe(func(v string) {
		names = append(names, v)
	})
	age.Subscribe(func(v int) {
		ages = append(ages, v)
	})

	// Age-only change: the name projection must stay silent.
	person.Set(profile{Name: "John", Age: 31})

	if len(names) != 0 {
		t.Errorf("Expected no name notifications for an age change, got %v", names)
	}
	if len(ages) != 1 || ages[0] != 31 {
		t.Errorf("Expected ages to be [31], got %v", ages)
	}

	// Name-only change: the age projection must stay silent.
	person.Set(profile{Name: "Jane", Age: 31})

	if len(names) != 1 || names[0] != "Jane" {
		t.Errorf("Expected names to be [Jane], got %v", names)
	}
	if len(ages) != 1 {
		t.Errorf("Expected ages to stay [31], got %v", ages)
	}
}

func TestProjectionUnsubscribe(t *testing.T) {
	person := vessel.New(profile{Name: "John", Age: 30})

	name := vessel.Select(person, func(p profile) string { return p.Name })

	notifications := 0
	unsubscribe := name.Subscribe(func(string) {
		notifications++
	})

	person.Set(profile{Name: "Jane", Age: 30})
	unsubscribe()
	person.Set(profile{Name: "Joan", Age: 30})

	if notifications != 1 {
		t.Errorf("Expected 1 notification before unsubscribing, got %d", notifications)
	}
}

func TestProjectionCustomEqualityFn(t *testing.T) {
	person := vessel.New(profile{Name: "John", Age: 30})

	name := vessel.Select(person, func(p profile) string { return p.Name })
	name.SetEqualityFn(func(a, b string) bool {
		return strings.EqualFold(a, b)
	})

	notifications := 0
	name.Subscribe(func(string) {
		notifications++
	})

	// Case-only change: equal under the custom function.
	person.Set(profile{Name: "JOHN", Age: 30})
	if notifications != 0 {
		t.Errorf("Expected no notification for a case-only change, got %d", notifications)
	}

	person.Set(profile{Name: "Jane", Age: 30})
	if notifications != 1 {
		t.Errorf("Expected 1 notification after a real change, got %d", notifications)
	}
}

func TestProjectionDispose(t *testing.T) {
	person := vessel.New(profile{Name: "John", Age: 30})

	name := vessel.Select(person, func(p profile) string { return p.Name })

	notifications := 0
	name.Subscribe(func(string) {
		notifications++
	})

	name.Dispose()
	person.Set(profile{Name: "Jane", Age: 30})

	if notifications != 0 {
		t.Errorf("Expected no notifications after Dispose, got %d", notifications)
	}
	if name.Get() != "Jane" {
		t.Errorf("Expected Get to keep reading the container after Dispose, got '%s'", name.Get())
	}
}

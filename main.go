package main

import (
	"fmt"
	"log"

	"github.com/asaidimu/go-fetchxml/core/fetchxml"
)

func main() {
	// Build a query fluently and print it.
	query := fetchxml.New("account").
		Select("name", "accountid").
		LinkEntity("contact").Alias("c").From("contactid").To("primarycontactid").End().
		AddFilter("name", fetchxml.OperatorEq, "Contoso").
		AddFilter("statecode", fetchxml.OperatorEq, 0).
		AddOrder("name", true).
		AddAggregate("revenue", "total_revenue", fetchxml.AggregationTypeSum).
		AddGroupBy("industry")

	text, err := query.ToString(true)
	if err != nil {
		log.Fatalf("Failed to serialize query: %v", err)
	}
	fmt.Println(text)

	// Reconstruct a builder from an existing FetchXML document.
	document := `
    <fetch>
      <entity name="account">
        <attribute name="name" />
        <attribute name="accountid" />
        <filter type="and">
          <condition attribute="name" operator="eq" value="Contoso" />
          <condition attribute="statecode" operator="eq" value="0" />
        </filter>
        <link-entity name="contact" alias="c" from="contactid" to="primarycontactid" link-type="inner" />
        <order attribute="name" descending="true" />
        <attribute name="revenue" alias="total_revenue" aggregate="sum" />
        <attribute name="industry" groupby="true" />
      </entity>
    </fetch>`

	loaded, err := fetchxml.FromString(document)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	text, err = loaded.ToString(true)
	if err != nil {
		log.Fatalf("Failed to serialize loaded query: %v", err)
	}
	fmt.Println(text)
}

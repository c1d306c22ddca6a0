package shopify

const imageFields = `url
    altText
    width
    height`

const moneyFields = `amount
    currencyCode`

const productFragment = `
fragment ProductFragment on Product {
  id
  handle
  title
  description
  descriptionHtml
  availableForSale
  featuredImage { ` + imageFields + ` }
  images(first: 10) { edges { node { ` + imageFields + ` } } }
  options { id name values }
  priceRange {
    minVariantPrice { ` + moneyFields + ` }
    maxVariantPrice { ` + moneyFields + ` }
  }
  variants(first: 100) {
    edges {
      node {
        id
        title
        availableForSale
        selectedOptions { name value }
        price { ` + moneyFields + ` }
        compareAtPrice { ` + moneyFields + ` }
        image { ` + imageFields + ` }
      }
    }
  }
  seo { title description }
  tags
  vendor
  productType
  createdAt
  updatedAt
}
`

const cartFragment = `
fragment CartFragment on Cart {
  id
  checkoutUrl
  totalQuantity
  cost {
    subtotalAmount { ` + moneyFields + ` }
    totalAmount { ` + moneyFields + ` }
    totalTaxAmount { ` + moneyFields + ` }
  }
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            selectedOptions { name value }
            product {
              id
              handle
              title
              featuredImage { ` + imageFields + ` }
            }
            price { ` + moneyFields + ` }
          }
        }
        cost { totalAmount { ` + moneyFields + ` } }
      }
    }
  }
}
`

const userErrorFields = `userErrors { field message }`

const productsQuery = productFragment + `
query GetProducts($first: Int!) {
  products(first: $first, sortKey: CREATED_AT, reverse: true) {
    edges { node { ...ProductFragment } }
  }
}
`

const productByHandleQuery = productFragment + `
query GetProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFragment }
}
`

const collectionsQuery = `
query GetCollections($first: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        handle
        title
        description
        image { ` + imageFields + ` }
      }
    }
  }
}
`

const collectionByHandleQuery = productFragment + `
query GetCollectionByHandle($handle: String!, $first: Int!) {
  collection(handle: $handle) {
    id
    handle
    title
    description
    image { ` + imageFields + ` }
    products(first: $first) { edges { node { ...ProductFragment } } }
  }
}
`

const searchProductsQuery = productFragment + `
query SearchProducts($query: String!, $first: Int!) {
  search(query: $query, first: $first, types: PRODUCT) {
    edges { node { ... on Product { ...ProductFragment } } }
  }
}
`

const cartQuery = cartFragment + `
query GetCart($cartId: ID!) {
  cart(id: $cartId) { ...CartFragment }
}
`

const cartCreateMutation = cartFragment + `
mutation CreateCart($lines: [CartLineInput!]) {
  cartCreate(input: { lines: $lines }) {
    cart { ...CartFragment }
    ` + userErrorFields + `
  }
}
`

const cartLinesAddMutation = cartFragment + `
mutation AddToCart($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { ...CartFragment }
    ` + userErrorFields + `
  }
}
`

const cartLinesUpdateMutation = cartFragment + `
mutation UpdateCart($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart { ...CartFragment }
    ` + userErrorFields + `
  }
}
`

const cartLinesRemoveMutation = cartFragment + `
mutation RemoveFromCart($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart { ...CartFragment }
    ` + userErrorFields + `
  }
}
`
